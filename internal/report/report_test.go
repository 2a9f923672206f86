package report

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		score int
		max   int
		want  float64
	}{
		{"42 of 100", 42, 100, 42.0},
		{"33 of 100", 33, 100, 33.0},
		{"7 of 100", 7, 100, 7.0},
		{"non-terminating thirds", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"full", 100, 100, 100.0},
		{"zero", 0, 100, 0.0},
		{"zero max", 5, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.score, tt.max)
			if got != tt.want {
				t.Fatalf("Percent(%d, %d) = %v, want %v", tt.score, tt.max, got, tt.want)
			}
		})
	}
}

func TestFinalize(t *testing.T) {
	r := New("https://github.com/acme/repo")
	r.Categories = CategoryList{
		{Name: "A", Score: 3, MaxScore: 5},
		{Name: "B", Score: 4, MaxScore: 5},
	}
	r.Score = 7
	r.Finalize()

	if r.Percentage != 7.0 {
		t.Fatalf("Percentage = %v, want 7.0", r.Percentage)
	}
	if r.ExecutedPercentage != 70.0 {
		t.Fatalf("ExecutedPercentage = %v, want 70.0", r.ExecutedPercentage)
	}
}

func TestFinalizeEmptyReport(t *testing.T) {
	r := New("https://github.com/acme/repo")
	r.Finalize()

	if r.Percentage != 0.0 || r.ExecutedPercentage != 0.0 {
		t.Fatalf("empty report percentages = %v / %v, want 0 / 0", r.Percentage, r.ExecutedPercentage)
	}
}

func TestCategoryListMarshalPreservesOrder(t *testing.T) {
	l := CategoryList{
		{Name: "Zeta", Checks: []Check{}, Score: 1, MaxScore: 2},
		{Name: "Alpha", Checks: []Check{}, Score: 2, MaxScore: 2},
		{Name: "Mid", Checks: []Check{}, Score: 0, MaxScore: 2},
	}

	raw, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(raw)
	zi := strings.Index(s, `"Zeta"`)
	ai := strings.Index(s, `"Alpha"`)
	mi := strings.Index(s, `"Mid"`)
	if zi < 0 || ai < 0 || mi < 0 {
		t.Fatalf("missing category keys in %s", s)
	}
	if !(zi < ai && ai < mi) {
		t.Fatalf("category order not preserved: %s", s)
	}

	// Must remain a valid JSON object with the wire field names.
	var decoded map[string]struct {
		Checks   []Check `json:"checks"`
		Score    int     `json:"score"`
		MaxScore int     `json:"max_score"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded["Zeta"].Score != 1 || decoded["Alpha"].MaxScore != 2 {
		t.Fatalf("unexpected decoded values: %+v", decoded)
	}
}

func TestCheckWireFieldNames(t *testing.T) {
	raw, err := json.Marshal(Check{Name: "n", Passed: true, Points: 1, MaxPoints: 1, Details: "d"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"name"`, `"passed"`, `"points"`, `"max_points"`, `"details"`, `"how_to_fix"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("missing field %s in %s", field, raw)
		}
	}
}
