package engine

import (
	"owaspcheck/internal/report"
	"owaspcheck/internal/rules"
)

// aggregator accumulates check records into the report under construction.
// It is owned by a single Evaluate call, so concurrent evaluations of
// different targets never share score state. Categories are created lazily
// in first-add order, which is the catalog's declared order.
type aggregator struct {
	rep   *report.Report
	index map[string]int
}

func newAggregator(rep *report.Report) *aggregator {
	return &aggregator{rep: rep, index: make(map[string]int)}
}

// add appends a check to the named category, awarding weight points iff the
// outcome passed, and always raising the possible points by weight. The
// overall total is the sum of all category scores.
func (a *aggregator) add(category, name string, out rules.Outcome, weight int) {
	i, ok := a.index[category]
	if !ok {
		a.rep.Categories = append(a.rep.Categories, report.CategoryResult{
			Name:   category,
			Checks: []report.Check{},
		})
		i = len(a.rep.Categories) - 1
		a.index[category] = i
	}
	cat := &a.rep.Categories[i]

	points := 0
	howToFix := ""
	if out.Passed {
		points = weight
		cat.Score += weight
		a.rep.Score += weight
	} else {
		howToFix = out.Remediation
	}
	cat.MaxScore += weight

	cat.Checks = append(cat.Checks, report.Check{
		Name:      name,
		Passed:    out.Passed,
		Points:    points,
		MaxPoints: weight,
		Details:   out.Details,
		HowToFix:  howToFix,
	})
}
