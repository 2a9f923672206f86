package rules

import (
	"context"
	"fmt"
	"strings"

	"owaspcheck/internal/source"
)

func generalCategory() Category {
	return Category{
		Name: "General Compliance & Governance",
		Rules: []Rule{
			{
				Name:   "Clearly defined project goal and scope",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					found, readable := overviewContains(ctx, repo, "goal", "purpose", "about", "overview", "description")
					if !readable {
						return Fail("README.md file not found or could not be read",
							"Create a README.md file in the root of your repository with a clear project description and goals."), nil
					}
					details := "Checked README for keywords: goal, purpose, about, overview, description"
					if !found {
						return Fail(details,
							"Add a clear project description in your README.md file. Include sections like '## About', '## Purpose', or '## Project Goal' to explain what your project does."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Open-source license file present",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					name, ok := repo.License()
					if !ok {
						return Fail("License: Not found",
							"Add a LICENSE file to your repository. Popular choices include MIT, Apache 2.0, or GPL. Use GitHub's 'Add file > Create new file > LICENSE' wizard to add one."), nil
					}
					return Pass("License: " + name), nil
				},
			},
			{
				Name:   "README file provides project overview",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for README.md, README.rst, or README.txt in repository root"
					if _, err := repo.Overview(ctx); err != nil {
						return Fail(details,
							"Create a README.md file in the root directory with project overview, installation instructions, and usage examples."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Under OWASP organization",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Repository owner: " + repo.Owner()
					if !strings.EqualFold(repo.Owner(), "owasp") {
						return Fail(details,
							"This check verifies if the repository is under the OWASP GitHub organization. Consider contributing to OWASP or following OWASP guidelines even if not under OWASP org."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Contribution guidelines (CONTRIBUTING.md)",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for CONTRIBUTING.md file in repository root"
					if !fileExists(ctx, repo, "CONTRIBUTING.md") {
						return Fail(details,
							"Create a CONTRIBUTING.md file that explains how others can contribute to your project. Include guidelines for submitting issues, pull requests, and code style standards."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Issue tracker is active",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					updated, ok := repo.LastUpdatedAt()
					last := "Unknown"
					if ok {
						last = updated.Format("2006-01-02")
					}
					details := fmt.Sprintf("Open issues: %d, Last updated: %s", repo.OpenIssueCount(), last)
					if !ok {
						return Fail(details,
							"Enable the Issues feature in your repository settings and actively respond to and manage issues."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Active maintainers with recent commits",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					n, err := repo.RecentCommitCount(ctx, 10)
					if err != nil {
						return Fail("Could not fetch commit history",
							"Make sure the repository has commits and is accessible. Regular commits demonstrate active maintenance."), nil
					}
					details := fmt.Sprintf("Found %d recent commits", n)
					if n == 0 {
						return Fail(details,
							"Ensure regular commits to show active maintenance. If the project is complete, add a note about its maintenance status in the README."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Code of Conduct present",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for CODE_OF_CONDUCT.md file in repository root"
					if !fileExists(ctx, repo, "CODE_OF_CONDUCT.md") {
						return Fail(details,
							"Add a CODE_OF_CONDUCT.md file to set expectations for community behavior. GitHub provides a template under 'Insights > Community > Code of conduct'."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Project roadmap or milestones documented",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					milestones, err := repo.MilestoneCount(ctx)
					if err != nil {
						return Outcome{}, fmt.Errorf("fetch milestones: %w", err)
					}
					has := fileExists(ctx, repo, "ROADMAP.md") || milestones > 0
					details := fmt.Sprintf("Checked for ROADMAP.md file and GitHub milestones (found %d milestones)", milestones)
					if !has {
						return Fail(details,
							"Create a ROADMAP.md file or use GitHub Milestones (under 'Issues' tab) to document planned features and project direction."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Well-governed with active maintainers",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					collabs, err := repo.CollaboratorCount(ctx)
					if err != nil {
						return Outcome{}, fmt.Errorf("fetch collaborators: %w", err)
					}
					details := fmt.Sprintf("Collaborators: %d", collabs)
					if collabs == 0 {
						return Fail(details,
							"Add collaborators to your repository through Settings > Collaborators. Having multiple maintainers ensures better project governance."), nil
					}
					return Pass(details), nil
				},
			},
		},
	}
}
