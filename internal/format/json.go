package format

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/commitlint/internal/model"
	"github.com/maxbolgarin/errm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the machine-readable result of a lint run.
type Report struct {
	Valid    bool          `json:"valid"`
	Problems []ReportEntry `json:"problems"`
}

// ReportEntry is one problem in a report.
type ReportEntry struct {
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	Tip         string             `json:"tip"`
	URL         string             `json:"url,omitempty"`
	Annotations []ReportAnnotation `json:"annotations,omitempty"`
}

// ReportAnnotation is one annotated span in a report entry. Offset is in
// bytes from the start of the message, length in characters.
type ReportAnnotation struct {
	Label  string `json:"label"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// RenderJSON serializes problems as an indented JSON report. An empty problem
// list produces a valid report with an empty array, not null.
func RenderJSON(problems []model.Problem) (string, error) {
	report := Report{
		Valid:    len(problems) == 0,
		Problems: make([]ReportEntry, 0, len(problems)),
	}
	for _, p := range problems {
		entry := ReportEntry{
			Code:  p.Code.String(),
			Title: p.Title,
			Tip:   p.Tip,
			URL:   p.URL,
		}
		for _, a := range p.Annotations {
			entry.Annotations = append(entry.Annotations, ReportAnnotation{
				Label:  a.Label,
				Offset: a.Offset,
				Length: a.Length,
			})
		}
		report.Problems = append(report.Problems, entry)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errm.Wrap(err, "failed to marshal report")
	}
	return string(out), nil
}
