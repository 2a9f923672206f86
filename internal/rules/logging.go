package rules

import (
	"context"

	"owaspcheck/internal/source"
)

func loggingCategory() Category {
	return Category{
		Name: "Logging & Monitoring",
		Rules: []Rule{
			manualRule("Logging implemented",
				"check for a logging framework wired through the codebase."),
			manualRule("Configurable log levels",
				"check configuration files for adjustable log verbosity."),
			manualRule("Logs don't contain sensitive data",
				"code review required; credentials and personal data must never reach logs."),
			{
				Name:   "Monitoring integration",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for monitoring setup (prometheus.yml, datadog.yaml, or monitoring/ directory)"
					has := anyFileExists(ctx, repo, "prometheus.yml", "datadog.yaml") ||
						dirExists(ctx, repo, "monitoring")
					if !has {
						return Fail(details,
							"Integrate a monitoring system (Prometheus, Datadog, CloudWatch) and export service health metrics."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Structured logging format",
				"check the logging implementation for machine-parseable output (JSON or key-value)."),
			manualRule("Audit logs for security actions",
				"security review needed; security-relevant actions should leave an audit trail."),
			{
				Name:   "Alerts configured",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for alerting configuration (alerts.yml or alertmanager.yml)"
					if !anyFileExists(ctx, repo, "alerts.yml", "alertmanager.yml") {
						return Fail(details,
							"Configure alerts on error rates and availability so incidents page a human instead of waiting to be noticed."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Log rotation and archival",
				"operations review needed for rotation and retention policies."),
			{
				Name:   "Incident response playbook",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for INCIDENT_RESPONSE.md, PLAYBOOK.md, or docs/incident-response.md"
					if !anyFileExists(ctx, repo, "INCIDENT_RESPONSE.md", "PLAYBOOK.md", "docs/incident-response.md") {
						return Fail(details,
							"Write an incident response playbook documenting on-call escalation, triage steps, and communication channels."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Logging config separate from code",
				"check that logging configuration lives in config files, not hardcoded."),
		},
	}
}
