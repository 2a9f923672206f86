package rules

import (
	"context"
	"fmt"
	"strings"

	"owaspcheck/internal/source"
)

// sourceExtensions are the file extensions sampled by the inline-comment probe.
var sourceExtensions = []string{".py", ".js", ".java", ".go", ".rs"}

func documentationCategory() Category {
	return Category{
		Name: "Documentation & Usability",
		Rules: []Rule{
			{
				Name:   "Installation guide in README",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					found, readable := overviewContains(ctx, repo, "install", "setup", "getting started", "quick start")
					if !readable {
						return Fail("Could not read README file",
							"Create a README.md file with an installation section containing setup instructions."), nil
					}
					details := "Searched README for keywords: install, setup, getting started, quick start"
					if !found {
						return Fail(details,
							"Add an installation section to your README.md. Include step-by-step instructions for setting up the project (e.g., ## Installation, ## Setup, or ## Getting Started)."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Usage examples provided",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					found, readable := overviewContains(ctx, repo, "usage", "example", "how to use", "tutorial")
					if !readable {
						return Fail("Could not read README file",
							"Create a README.md file with usage examples and code snippets."), nil
					}
					details := "Searched README for keywords: usage, example, how to use, tutorial"
					if !found {
						return Fail(details,
							"Add usage examples to your README.md. Include code snippets showing how to use your project (e.g., ## Usage, ## Examples, or ## Quick Start)."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Wiki or docs/ directory",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					hasWiki := repo.WikiEnabled()
					hasDocs := dirExists(ctx, repo, "docs")
					details := fmt.Sprintf("Wiki enabled: %t, docs/ directory exists: %t", hasWiki, hasDocs)
					if !hasWiki && !hasDocs {
						return Fail(details,
							"Enable the Wiki feature in repository Settings, or create a 'docs/' directory with detailed documentation files."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "API documentation available",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					has := anyFileExists(ctx, repo, "swagger.yaml", "openapi.yaml") || dirExists(ctx, repo, "api-docs")
					details := "Checked for swagger.yaml, openapi.yaml, or api-docs/ directory"
					if !has {
						return Fail(details,
							"If your project has an API, document it using OpenAPI/Swagger. Create a swagger.yaml or openapi.yaml file, or add API documentation in an api-docs/ directory."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Inline code comments present",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked sample source files for comment presence"
					if !hasCodeComments(ctx, repo) {
						return Fail(details,
							"Add meaningful comments to your code to explain complex logic. Use docstrings for functions/classes and inline comments for non-obvious code."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Scripts and configuration documented",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for scripts/README.md file"
					if !fileExists(ctx, repo, "scripts/README.md") {
						return Fail(details,
							"If you have a scripts/ directory, create a scripts/README.md file explaining what each script does and how to use them."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "FAQ or troubleshooting guide",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for FAQ.md or TROUBLESHOOTING.md files"
					if !anyFileExists(ctx, repo, "FAQ.md", "TROUBLESHOOTING.md") {
						return Fail(details,
							"Create a FAQ.md or TROUBLESHOOTING.md file to help users solve common problems. Document frequently asked questions and their solutions."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Well-defined error messages",
				"automated check not possible. Ensure your code provides clear, actionable error messages."),
			{
				Name:   "Clear versioning strategy",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					releases, err := repo.ReleaseCount(ctx)
					if err != nil {
						return Outcome{}, fmt.Errorf("fetch releases: %w", err)
					}
					tags, err := repo.TagCount(ctx)
					if err != nil {
						return Outcome{}, fmt.Errorf("fetch tags: %w", err)
					}
					details := fmt.Sprintf("Releases: %d, Tags: %d", releases, tags)
					if releases == 0 && tags == 0 {
						return Fail(details,
							"Create releases or tags to track versions. Use semantic versioning (e.g., v1.0.0). Go to 'Releases' on GitHub and click 'Create a new release'."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "CHANGELOG maintained",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for CHANGELOG.md file in repository root"
					if !fileExists(ctx, repo, "CHANGELOG.md") {
						return Fail(details,
							"Create a CHANGELOG.md file to document all notable changes. Use the format from https://keepachangelog.com/"), nil
					}
					return Pass(details), nil
				},
			},
		},
	}
}

// hasCodeComments samples up to five root-level source files and looks for
// common comment markers. Adapter failures count as no comments found.
func hasCodeComments(ctx context.Context, repo source.Repo) bool {
	entries, err := repo.RootEntries(ctx)
	if err != nil {
		return false
	}
	if len(entries) > 5 {
		entries = entries[:5]
	}
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		match := false
		for _, ext := range sourceExtensions {
			if strings.HasSuffix(e.Name, ext) {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		content, err := repo.ReadFile(ctx, e.Name)
		if err != nil {
			continue
		}
		if strings.Contains(content, "#") || strings.Contains(content, "//") || strings.Contains(content, "/*") {
			return true
		}
	}
	return false
}
