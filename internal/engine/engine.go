// Package engine orchestrates rule execution against a data-source adapter
// and assembles the compliance report.
package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"owaspcheck/internal/report"
	"owaspcheck/internal/rules"
	"owaspcheck/internal/source"
	"owaspcheck/internal/target"
)

const defaultWorkers = 4

type Engine struct {
	src     source.Source
	web     source.PageFetcher
	workers int
}

// New builds an engine and validates the rule catalog's weight and
// uniqueness invariants up front.
func New(src source.Source, web source.PageFetcher, workers int) (*Engine, error) {
	if src == nil {
		return nil, errors.New("engine: nil source")
	}
	if web == nil {
		return nil, errors.New("engine: nil page fetcher")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Engine{src: src, web: web, workers: workers}, nil
}

// Evaluate runs the full check against one target and always returns a
// report; failures land in the report's Error field, never as a panic or a
// bare error to the caller.
func (e *Engine) Evaluate(ctx context.Context, rawURL string) *report.Report {
	rep := report.New(rawURL)

	tgt, err := target.Parse(rawURL)
	if err != nil {
		rep.Error = err.Error()
		rep.Finalize()
		return rep
	}

	switch tgt.Kind {
	case target.KindRepo:
		e.evaluateRepo(ctx, rep, tgt)
	default:
		e.evaluateWebsite(ctx, rep, tgt)
	}

	rep.Finalize()
	return rep
}

func (e *Engine) evaluateRepo(ctx context.Context, rep *report.Report, tgt target.Target) {
	repo, err := e.src.Resolve(ctx, tgt.Owner, tgt.Name)
	if err != nil {
		switch {
		case errors.Is(err, source.ErrRateLimited):
			rep.Error = "Failed to fetch repository: API rate limit may be exceeded or access is forbidden. Consider using a GitHub token with the --token option."
		case errors.Is(err, source.ErrNotFound):
			rep.Error = "Failed to fetch repository: not found. Please check the repository URL and your network connection."
		default:
			rep.Error = fmt.Sprintf("Failed to fetch repository: %v. Please check the repository URL and your network connection.", err)
		}
		return
	}

	agg := newAggregator(rep)
	for _, cat := range rules.Catalog() {
		outcomes, errs := e.evaluateCategory(ctx, repo, cat)

		// Aggregate in declared order. On the first unexpected failure the
		// results accumulated so far stay in the report (best-effort partial
		// report) and evaluation stops.
		for i, r := range cat.Rules {
			if errs[i] != nil {
				rep.Error = fmt.Sprintf("Unexpected error evaluating %q: %v", r.Name, errs[i])
				return
			}
			agg.add(cat.Name, r.Name, outcomes[i], r.Weight)
		}
	}
}

// evaluateCategory runs one category's rules under a bounded worker group.
// Outcomes land in per-rule slots so report order is the declared order
// regardless of completion order, and one rule's failure never touches
// another's slot. Workers always return nil so a failing rule does not cancel
// its siblings; errors are reported per slot.
func (e *Engine) evaluateCategory(ctx context.Context, repo source.Repo, cat rules.Category) ([]rules.Outcome, []error) {
	outcomes := make([]rules.Outcome, len(cat.Rules))
	errs := make([]error, len(cat.Rules))

	g := new(errgroup.Group)
	g.SetLimit(e.workers)
	for i, r := range cat.Rules {
		g.Go(func() error {
			outcomes[i], errs[i] = r.Eval(ctx, repo)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, errs
}

func (e *Engine) evaluateWebsite(ctx context.Context, rep *report.Report, tgt target.Target) {
	text, err := e.web.FetchText(ctx, tgt.URL)
	if err != nil {
		rep.Error = fmt.Sprintf("Failed to fetch website: %v", err)
		return
	}

	agg := newAggregator(rep)
	for _, r := range rules.WebsiteRules() {
		agg.add(rules.WebsiteCategoryName, r.Name, r.Eval(text), r.Weight)
	}
	rep.Note = "Limited compliance checks for non-GitHub URLs. Consider providing a GitHub repository URL for comprehensive analysis."
}
