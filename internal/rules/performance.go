package rules

import (
	"context"

	"owaspcheck/internal/source"
)

func performanceCategory() Category {
	return Category{
		Name: "Performance & Scalability",
		Rules: []Rule{
			manualRule("Code optimized for performance",
				"profiling required to confirm hot paths are optimized."),
			manualRule("Asynchronous processing where needed",
				"architecture review needed for long-running or I/O-bound work."),
			manualRule("Caching strategies implemented",
				"check for cache configuration where repeated expensive work occurs."),
			manualRule("Optimized database queries",
				"database review needed for indexes and query plans."),
			manualRule("Rate limiting to prevent abuse",
				"for web services, verify inbound rate limiting is in place."),
			manualRule("No memory leaks",
				"profiling required under sustained load."),
			{
				Name:   "Load testing performed",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for load test scripts (locustfile.py, k6.js, loadtest/ or load-tests/)"
					has := anyFileExists(ctx, repo, "locustfile.py", "k6.js") ||
						anyDirExists(ctx, repo, "loadtest", "load-tests")
					if !has {
						return Fail(details,
							"Add load testing with a tool like k6, Locust, or JMeter and keep the scripts in the repository so results are reproducible."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Supports horizontal scaling",
				"architecture review needed; avoid instance-local state that prevents running multiple replicas."),
			manualRule("Uses lazy loading",
				"code review needed for deferred loading of expensive resources."),
			manualRule("Pagination for large datasets",
				"API/UI review needed; large collections should page rather than return everything."),
		},
	}
}
