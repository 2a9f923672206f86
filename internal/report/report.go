package report

import (
	"bytes"
	"encoding/json"
	"math"
)

// MaxScore is the fixed overall maximum for a repository report. The rule
// catalog's declared weights must sum to exactly this value; the final
// percentage always divides by it, even when fewer checks ran.
const MaxScore = 100

// Check is one rule's recorded result within a category.
type Check struct {
	Name      string `json:"name"`
	Passed    bool   `json:"passed"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"max_points"`
	Details   string `json:"details"`
	HowToFix  string `json:"how_to_fix"`
}

// CategoryResult groups checks under a named category with its sub-score.
type CategoryResult struct {
	Name     string  `json:"-"`
	Checks   []Check `json:"checks"`
	Score    int     `json:"score"`
	MaxScore int     `json:"max_score"`
}

// CategoryList preserves evaluation order while still serializing as a JSON
// object keyed by category name, matching the report's wire format.
type CategoryList []CategoryResult

func (l CategoryList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(struct {
			Checks   []Check `json:"checks"`
			Score    int     `json:"score"`
			MaxScore int     `json:"max_score"`
		}{c.Checks, c.Score, c.MaxScore})
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the complete structured result of one evaluation run.
type Report struct {
	URL      string `json:"url"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	// Percentage divides by the fixed MaxScore constant. When a run ends
	// early only part of the catalog contributes, so this can under-represent
	// partial results; ExecutedPercentage covers that case.
	Percentage float64 `json:"percentage"`
	// ExecutedPercentage divides by the summed weight of the checks that
	// actually ran. Zero when nothing ran.
	ExecutedPercentage float64      `json:"executed_percentage"`
	Categories         CategoryList `json:"categories"`
	Error              string       `json:"error,omitempty"`
	Note               string       `json:"note,omitempty"`
}

// New returns an empty report for the given target URL.
func New(url string) *Report {
	return &Report{
		URL:        url,
		MaxScore:   MaxScore,
		Categories: CategoryList{},
	}
}

// ExecutedMax is the summed weight of all checks recorded in the report.
func (r *Report) ExecutedMax() int {
	total := 0
	for _, c := range r.Categories {
		total += c.MaxScore
	}
	return total
}

// Finalize computes the percentage fields from the accumulated categories.
func (r *Report) Finalize() {
	r.Percentage = Percent(r.Score, r.MaxScore)
	if executed := r.ExecutedMax(); executed > 0 {
		r.ExecutedPercentage = Percent(r.Score, executed)
	}
}

// Percent returns score/max*100 rounded half away from zero to two decimals.
func Percent(score, max int) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(float64(score)/float64(max)*100*100) / 100
}
