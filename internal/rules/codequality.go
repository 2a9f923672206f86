package rules

import (
	"context"
	"fmt"
	"strings"

	"owaspcheck/internal/source"
)

// linterConfigs are the per-language linter config files the style probes
// look for.
var linterConfigs = []string{
	".eslintrc", ".pylintrc", ".rubocop.yml", "tslint.json",
	".editorconfig", "phpcs.xml", ".prettierrc",
}

func codeQualityCategory() Category {
	linterDetails := "Checked for linter config files: " + strings.Join(linterConfigs, ", ")

	return Category{
		Name: "Code Quality & Best Practices",
		Rules: []Rule{
			{
				Name:   "Code follows style guide",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					if !anyFileExists(ctx, repo, linterConfigs...) {
						return Fail(linterDetails,
							"Add a linter configuration file for your language (e.g., .eslintrc for JavaScript, .pylintrc for Python, .rubocop.yml for Ruby)."), nil
					}
					return Pass(linterDetails), nil
				},
			},
			{
				Name:   "Uses linters",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					if !anyFileExists(ctx, repo, linterConfigs...) {
						return Fail(linterDetails,
							"Configure and use a linter for your project. Add the config file and include linting in your CI/CD pipeline."), nil
					}
					return Pass(linterDetails), nil
				},
			},
			{
				Name:   "Code is modular and maintainable",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					entries, err := repo.RootEntries(ctx)
					if err != nil {
						return Fail("Could not analyze repository structure",
							"Organize your code into logical modules and directories to improve maintainability."), nil
					}
					numDirs := 0
					for _, e := range entries {
						if e.IsDir {
							numDirs++
						}
					}
					details := fmt.Sprintf("Found %d directories in repository root", numDirs)
					if numDirs < 2 {
						return Fail(details,
							"Organize your code into logical modules/directories (e.g., src/, lib/, tests/). This improves maintainability and code organization."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Adheres to DRY principle",
				"automated check not possible. Follow the Don't Repeat Yourself (DRY) principle and extract common code into reusable functions/modules."),
			manualRule("Secure coding practices followed",
				"verified only indirectly by the other security checks in this report. Follow OWASP secure coding guidelines."),
			manualRule("No hardcoded credentials or secrets",
				"only a basic pattern check is performed. Remove any hardcoded passwords, API keys, or secrets from your code; scan with tools like git-secrets or truffleHog."),
			manualRule("Uses parameterized queries",
				"verify manually for SQL databases. Always use parameterized queries or prepared statements; never concatenate user input into SQL."),
			manualRule("Strong cryptographic algorithms",
				"verify manually. Use modern algorithms (AES-256, SHA-256+); avoid MD5 or SHA-1 for security purposes."),
			manualRule("Input validation implemented",
				"verify via security review. Validate and sanitize all user inputs; use allowlists and proper type checking."),
			manualRule("Output encoding for XSS prevention",
				"verify via security review. Encode all output with context-appropriate encoding (HTML, JavaScript, URL, CSS)."),
		},
	}
}
