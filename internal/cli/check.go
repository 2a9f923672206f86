package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"owaspcheck/internal/config"
	"owaspcheck/internal/engine"
	gh "owaspcheck/internal/github"
	"owaspcheck/internal/output"
	"owaspcheck/internal/source"
	"owaspcheck/internal/webpage"
)

var cfg = config.New()

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Check one repository or website against OWASP project standards",
	Long: `Check a GitHub repository URL or a project website URL against the OWASP
project standards rubric.

A GitHub repository URL (github.com/<owner>/<repo>) is checked against the
full 100-point catalog. Any other URL gets a reduced website-only check and a
note explaining the limitation.

Authentication:
  A token raises the GitHub API rate limits. Sources (in order):
  1) --token flag
  2) GITHUB_TOKEN environment variable
  3) GitHub CLI (gh) authentication, if gh is installed and logged in
  Without a token the check still runs, but may hit the 60 requests/hour
  unauthenticated limit.

Output:
	Human-readable text by default; --json writes the structured report to
	stdout. Progress goes to stderr so --json output stays clean.

Exit codes:
	0 = report produced (including reports whose body carries an error)
	1 = the check could not run at all

Examples:
  owaspcheck check https://github.com/OWASP/Nettacker
  owaspcheck check https://github.com/OWASP/Nettacker --json
  GITHUB_TOKEN=<token> owaspcheck check https://github.com/acme/widget
  owaspcheck check https://owasp.org/www-project-top-ten/`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		token, _, err := gh.ResolveAuthToken(ctx, cfg.Token)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve GitHub auth token: %v\n", err)
			os.Exit(1)
		}

		client := gh.NewClient(token, gh.WithVerbose(cfg.Verbose, nil))
		src, err := source.NewGitHub(client)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		eng, err := engine.New(src, webpage.NewFetcher(0), cfg.Workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Checking compliance for: %s\n", args[0])
		rep := eng.Evaluate(ctx, args[0])

		if cfg.JSON {
			err = output.RenderJSON(os.Stdout, rep)
		} else {
			err = output.RenderText(os.Stdout, rep)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to render report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&cfg.Token, "token", "", "GitHub API token (optional, for higher rate limits; falls back to GITHUB_TOKEN)")
	checkCmd.Flags().BoolVar(&cfg.JSON, "json", false, "Output results in JSON format")
	checkCmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Overall timeout for the check")
	checkCmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent rule evaluations per category")
}
