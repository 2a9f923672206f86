package rules

import (
	"context"

	"owaspcheck/internal/source"
)

func securityCategory() Category {
	return Category{
		Name: "Security & OWASP Compliance",
		Rules: []Rule{
			{
				Name:   "Security policy (SECURITY.md)",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for SECURITY.md file in repository root"
					if !fileExists(ctx, repo, "SECURITY.md") {
						return Fail(details,
							"Create a SECURITY.md file to document your security policy and how to report vulnerabilities. GitHub provides a template under 'Security' tab."), nil
					}
					return Pass(details), nil
				},
			},
			{
				Name:   "Dependency scanning configured",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for .github/dependabot.yml configuration"
					if !fileExists(ctx, repo, ".github/dependabot.yml") {
						return Fail(details,
							"Enable Dependabot in repository Settings > Security > Dependabot alerts. Create .github/dependabot.yml to configure automatic dependency updates."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Uses secure headers (CSP, HSTS, etc.)",
				"for web applications, verify Content-Security-Policy, Strict-Transport-Security, X-Frame-Options, and X-Content-Type-Options headers."),
			manualRule("Input validation enforced",
				"code review required. Implement input validation for all user inputs and reject invalid data."),
			manualRule("RBAC implemented where applicable",
				"for multi-user systems, verify Role-Based Access Control with defined roles and permissions."),
			manualRule("Secure authentication mechanisms",
				"for auth systems, verify industry-standard authentication (OAuth 2.0, OpenID Connect), MFA, and secure password hashing (bcrypt, Argon2)."),
			manualRule("Secrets stored securely",
				"check for an .env.example template and ensure no .env file is committed; use environment variables or secret managers."),
			manualRule("Uses HTTPS for communication",
				"verify TLS/SSL configuration and forced HTTPS redirects for all network communication."),
			manualRule("Adheres to OWASP ASVS",
				"security assessment required against the OWASP Application Security Verification Standard."),
			manualRule("Secure cookie attributes",
				"for web applications, verify Secure, HttpOnly, and SameSite cookie attributes."),
			manualRule("No unnecessary ports exposed",
				"infrastructure review required. Only expose necessary ports; restrict access with security groups and network policies."),
			manualRule("Logs security events",
				"logging review required. Log authentication attempts, authorization failures, and validation errors with timestamps and user context."),
			manualRule("Least privilege principle",
				"code and infrastructure review required. Grant minimum permissions; avoid running as root/admin."),
			manualRule("No outdated/unsafe dependencies",
				"regular dependency scanning required with tools like OWASP Dependency-Check, Snyk, or npm audit."),
			manualRule("Complies with OWASP Top 10",
				"security testing required against the OWASP Top 10 vulnerability classes."),
		},
	}
}
