package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"owaspcheck/internal/rules"
)

var rulesListQuiet bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the compliance rule catalog",
	Long: `Inspect the OWASP compliance rule catalog.

The catalog is fixed: ten weighted categories totalling 100 points for
repository targets, plus a reduced website-only category.

Examples:
  # List the full catalog
  owaspcheck rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rule catalog",
	Long: `List every rule in the catalog, grouped by category in evaluation order,
with each rule's point weight.

Examples:
  owaspcheck rules list
  owaspcheck rules list --quiet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		for _, cat := range rules.Catalog() {
			if rulesListQuiet {
				for _, r := range cat.Rules {
					fmt.Fprintln(w, r.Name)
				}
				continue
			}
			printCategory(w, cat)
		}

		if !rulesListQuiet {
			fmt.Fprintf(w, "Total: %d points\n", rules.TotalWeight(rules.Catalog()))
		}
		return nil
	},
}

func printCategory(w io.Writer, cat rules.Category) {
	bold := color.New(color.Bold)

	weight := 0
	for _, r := range cat.Rules {
		weight += r.Weight
	}

	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "%s (%d points)\n", cat.Name, weight)
	fmt.Fprintln(w, "----------------------------------------")
	for _, r := range cat.Rules {
		fmt.Fprintf(w, "  %s (%d pt)\n", r.Name, r.Weight)
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule names")
}
