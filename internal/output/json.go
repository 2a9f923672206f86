package output

import (
	"encoding/json"
	"io"

	"owaspcheck/internal/report"
)

// RenderJSON writes the machine-readable report with indented, stable field
// names.
func RenderJSON(w io.Writer, rep *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
