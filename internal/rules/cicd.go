package rules

import (
	"context"

	"owaspcheck/internal/source"
)

// hasCIConfig probes for the common CI entry points.
func hasCIConfig(ctx context.Context, repo source.Repo) bool {
	return dirExists(ctx, repo, ".github/workflows") ||
		anyFileExists(ctx, repo, ".gitlab-ci.yml", ".travis.yml", "Jenkinsfile")
}

// hasTestLayout probes for the conventional test directories.
func hasTestLayout(ctx context.Context, repo source.Repo, names ...string) bool {
	return anyDirExists(ctx, repo, names...)
}

func cicdCategory() Category {
	const ciDetails = "Checked for .github/workflows/, .gitlab-ci.yml, .travis.yml, or Jenkinsfile"

	return Category{
		Name: "CI/CD & DevSecOps",
		Rules: []Rule{
			{
				Name:   "Automated unit tests implemented",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for tests/, test/, or __tests__ directories"
					if !hasTestLayout(ctx, repo, "tests", "test", "__tests__") {
						return Fail(details,
							"Create a tests/ or test/ directory and add unit tests for your code. Use testing frameworks like pytest (Python), Jest (JavaScript), JUnit (Java), etc."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Continuous Integration configured",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					if !hasCIConfig(ctx, repo) {
						return Fail(ciDetails,
							"Set up CI using GitHub Actions (.github/workflows/), GitLab CI (.gitlab-ci.yml), Travis CI, or Jenkins. Run tests automatically on every push."), nil
					}
					return Pass(ciDetails), nil
				},
			},
			{
				Name:   "CI/CD includes security scanning",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "CI configuration present; verify workflow files include SAST/DAST tools"
					if !hasCIConfig(ctx, repo) {
						return Fail(ciDetails,
							"Add security scanning to your CI pipeline. Use CodeQL (GitHub), SonarQube, or other SAST tools. Add the scan step to your workflow file."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Dependency scanning automated",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "CI configuration present; verify dependency scanning in CI workflows"
					if !hasCIConfig(ctx, repo) {
						return Fail(ciDetails,
							"Add dependency scanning to CI. Use GitHub's Dependabot, Snyk, or OWASP Dependency-Check. Configure in .github/dependabot.yml or CI workflow."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Code coverage reports generated",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "CI configuration present; verify coverage tools in CI configuration"
					if !hasCIConfig(ctx, repo) {
						return Fail(ciDetails,
							"Add code coverage to your CI pipeline. Use tools like Coverage.py (Python), Istanbul/NYC (JavaScript), JaCoCo (Java). Report coverage with Codecov or Coveralls."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Container security scanning",
				"required if the project ships containers. Scan images with Trivy, Clair, or Snyk Container before deployment."),
			manualRule("IaC security checks",
				"required if using Infrastructure as Code. Scan Terraform/CloudFormation with Checkov, tfsec, or CloudFormation Guard."),
			manualRule("Secure secrets management in CI/CD",
				"ensure no secrets appear in workflow files; reference them as CI secrets instead."),
			manualRule("Environment configurations managed",
				"check for an .env.example template and environment-specific configuration kept out of version control."),
			manualRule("Rollback mechanisms available",
				"deployment process review required. Use versioned releases, blue-green deployments, or feature flags for safe rollbacks."),
		},
	}
}
