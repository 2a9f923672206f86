// Package output renders a compliance report for humans (text) or machines
// (JSON). Renderers only read the report; they never affect scoring.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"owaspcheck/internal/report"
)

const rule80 = "================================================================================"
const rule80thin = "--------------------------------------------------------------------------------"

// Banner thresholds: closed, exhaustive bands, boundaries inclusive on the
// lower bound.
func banner(percentage float64) string {
	switch {
	case percentage >= 80:
		return "EXCELLENT COMPLIANCE"
	case percentage >= 60:
		return "GOOD COMPLIANCE"
	case percentage >= 40:
		return "NEEDS IMPROVEMENT"
	default:
		return "SIGNIFICANT IMPROVEMENTS NEEDED"
	}
}

// RenderText writes the human-readable multi-line report.
func RenderText(w io.Writer, rep *report.Report) error {
	bold := color.New(color.Bold)
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	fmt.Fprintln(w, rule80)
	bold.Fprintln(w, "OWASP Project Compliance Report")
	fmt.Fprintln(w, rule80)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Project URL: %s\n", rep.URL)
	fmt.Fprintf(w, "Overall Score: %d/%d (%s%%)\n", rep.Score, rep.MaxScore, formatPercent(rep.Percentage))
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule80)

	for _, cat := range rep.Categories {
		fmt.Fprintln(w)
		bold.Fprintln(w, cat.Name)
		fmt.Fprintf(w, "Score: %d/%d\n", cat.Score, cat.MaxScore)
		fmt.Fprintln(w, rule80thin)

		for _, check := range cat.Checks {
			mark := pass.Sprint("✓")
			if !check.Passed {
				mark = fail.Sprint("✗")
			}
			fmt.Fprintf(w, "  %s %s (%d/%d pts)\n", mark, check.Name, check.Points, check.MaxPoints)
			if check.Details != "" {
				fmt.Fprintf(w, "      → %s\n", check.Details)
			}
			if !check.Passed && check.HowToFix != "" {
				fmt.Fprintf(w, "      How to fix: %s\n", check.HowToFix)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule80)
	bold.Fprintf(w, "Status: %s\n", banner(rep.Percentage))
	fmt.Fprintln(w, rule80)

	if rep.Error != "" {
		fmt.Fprintln(w)
		fail.Fprintf(w, "Error: %s\n", rep.Error)
	}
	if rep.Note != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Note: %s\n", rep.Note)
	}
	return nil
}

// formatPercent trims trailing zeros so 42.00 renders as 42 and 33.33 stays
// 33.33, matching the report's two-decimal rounding.
func formatPercent(p float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", p), "0"), ".")
	if s == "" {
		return "0"
	}
	return s
}
