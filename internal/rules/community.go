package rules

import (
	"context"
	"fmt"
	"time"

	"owaspcheck/internal/source"
)

// staleAfter is the window used to decide whether a project still receives
// regular updates.
const staleAfter = 365 * 24 * time.Hour

func communityCategory() Category {
	return Category{
		Name: "Community & Support",
		Rules: []Rule{
			{
				Name:   "Maintainers actively engage",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					pushed, ok := repo.LastPushedAt()
					if !ok {
						return Fail("No push activity recorded for this repository",
							"Push changes regularly or document the project's maintenance status."), nil
					}
					return Pass("Last push: " + pushed.Format("2006-01-02")), nil
				},
			},
			{
				Name:   "Security vulnerability reporting process",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for SECURITY.md file in repository root"
					if !fileExists(ctx, repo, "SECURITY.md") {
						return Fail(details,
							"Document how to report vulnerabilities in a SECURITY.md file, including a contact and expected response time."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Security policy file (SECURITY.md)",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for SECURITY.md file in repository root"
					if !fileExists(ctx, repo, "SECURITY.md") {
						return Fail(details,
							"Create a SECURITY.md file; GitHub surfaces it automatically under the Security tab."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Community guidelines present",
				"check CODE_OF_CONDUCT.md and contributor documentation."),
			manualRule("Responsive to security issues",
				"check issue response times for security-labelled reports."),
			{
				Name:   "Regular project updates",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					pushed, ok := repo.LastPushedAt()
					if !ok {
						return Fail("Last update: unknown",
							"Push changes at least yearly, or archive the repository to signal its status."), nil
					}
					details := "Last update: " + pushed.Format("2006-01-02")
					if time.Since(pushed) > staleAfter {
						return Fail(details,
							"The repository has not been updated in over a year. Push changes regularly or document the project's maintenance status."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Multiple support channels",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					if !repo.DiscussionsEnabled() {
						return Fail("GitHub Discussions not enabled; check for other channels",
							"Enable GitHub Discussions or document other support channels (chat, mailing list) in the README."), nil
					}
					return Pass("GitHub Discussions enabled"), nil
				},
			},
			manualRule("Clear escalation path",
				"check SECURITY.md for an escalation contact."),
			manualRule("PR reviews before merging",
				"check branch protection settings for required reviews."),
			{
				Name:   "Good issue tracking hygiene",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					return Pass(manualDetails + fmt.Sprintf("open issues: %d; review triage practices", repo.OpenIssueCount())), nil
				},
			},
		},
	}
}
