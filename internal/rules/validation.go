package rules

import (
	"context"

	"owaspcheck/internal/source"
)

func testingCategory() Category {
	const testDirDetails = "Checked for tests/ or test/ directories"

	testDirRule := func(name, remediation string) Rule {
		return Rule{
			Name:   name,
			Weight: 1,
			Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
				if !hasTestLayout(ctx, repo, "tests", "test") {
					return Fail(testDirDetails, remediation), nil
				}
				return Pass(testDirDetails + "; review test contents to confirm"), nil
			},
		}
	}

	return Category{
		Name: "Testing & Validation",
		Rules: []Rule{
			testDirRule("Tests cover edge cases",
				"Add a test suite and include edge-case coverage (empty inputs, boundary values, malformed data)."),
			testDirRule("Unit, integration, and E2E tests",
				"Add unit tests for individual components, integration tests for component interaction, and end-to-end tests for user flows."),
			testDirRule("Uses mocks and stubs",
				"Use mocks and stubs in tests to isolate components from external dependencies."),
			testDirRule("Achieves 80%+ test coverage",
				"Measure coverage with your language's tooling and raise it to at least 80%."),
			testDirRule("Tests validate input sanitization",
				"Add tests that feed malicious and malformed input to validation code paths."),
			{
				Name:   "Automated fuzz testing",
				Weight: 1,
				Eval: func(ctx context.Context, repo source.Repo) (Outcome, error) {
					details := "Checked for fuzz/ or fuzzing/ directories and ClusterFuzzLite configuration"
					has := anyDirExists(ctx, repo, "fuzz", "fuzzing") ||
						fileExists(ctx, repo, ".clusterfuzzlite/Dockerfile")
					if !has {
						return Fail(details,
							"Add automated fuzz testing with a fuzzer appropriate to your language (e.g., go test -fuzz, AFL, libFuzzer, Atheris) and run it in CI."), nil
					}
					return Pass(details), nil
				},
			},
			manualRule("Fails gracefully with error logging",
				"verify that failures are handled gracefully and logged with enough context to debug."),
			manualRule("No sensitive data in logs",
				"code review needed to confirm logs never contain credentials, tokens, or personal data."),
			manualRule("Uses dependency injection",
				"architecture review needed. Inject dependencies rather than constructing them inline to keep code testable."),
			testDirRule("Regression tests for compatibility",
				"Add regression tests that pin previously working behavior so compatibility breaks are caught."),
		},
	}
}
