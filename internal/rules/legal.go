package rules

import (
	"context"

	"owaspcheck/internal/source"
)

func legalCategory() Category {
	return Category{
		Name: "Legal & Compliance",
		Rules: []Rule{
			manualRule("GDPR/CCPA compliance",
				"legal review needed for data protection obligations."),
			{
				Name:   "Dependencies properly licensed",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for a repository license; third-party licenses need manual review"
					if _, ok := repo.License(); !ok {
						return Fail(details,
							"Add a LICENSE file and verify that all third-party dependencies permit redistribution under it."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "No proprietary/restricted code",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for an open-source license"
					if _, ok := repo.License(); !ok {
						return Fail(details,
							"Publish the project under an open-source license, or remove code whose license restricts redistribution."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Users informed of data collection",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for PRIVACY.md file in repository root"
					if !fileExists(ctx, repo, "PRIVACY.md") {
						return Fail(details,
							"Add a PRIVACY.md file describing what data the project collects and how it is used."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Responsible disclosure policy",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for SECURITY.md file in repository root"
					if !fileExists(ctx, repo, "SECURITY.md") {
						return Fail(details,
							"Add a SECURITY.md file with a responsible disclosure policy for vulnerability reports."), nil
					}
					return Pass(details), nil
				},
			},
		},
	}
}
