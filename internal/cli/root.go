package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "owaspcheck",
	Short: "Check repositories and project websites against OWASP project standards",
	Long: `owaspcheck evaluates a GitHub repository (or project website) against the
OWASP project standards rubric and reports a weighted compliance score.

The checks are heuristics: file presence, README keywords, and repository
metadata. A passing report is a checklist result, not a security audit.

Examples:
	# Check a repository
	owaspcheck check https://github.com/OWASP/Nettacker

	# Machine-readable output
	owaspcheck check https://github.com/OWASP/Nettacker --json

	# List the rule catalog
	owaspcheck rules list

	# Print build info
	owaspcheck version`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging (prints every GitHub API call to stderr)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
