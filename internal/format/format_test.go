package format

import (
	"strings"
	"testing"

	"github.com/maxbolgarin/commitlint/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProblem() model.Problem {
	return model.NewProblemBuilder(
		"Your commit message is marked as a work in progress",
		"Remove the marker",
		model.CodeWipCommit,
		"WIP: add a feature",
	).
		WithAnnotation("Work in progress", 0, 4).
		WithURL("https://example.com/help").
		Build()
}

func TestRenderer_Render(t *testing.T) {
	out := NewRenderer(true).Render(sampleProblem())

	assert.Contains(t, out, "Your commit message is marked as a work in progress (wip-commit)")
	assert.Contains(t, out, "  | WIP: add a feature")
	assert.Contains(t, out, "  | ^^^^ Work in progress")
	assert.Contains(t, out, "  Remove the marker")
	assert.Contains(t, out, "  see: https://example.com/help")
}

func TestRenderer_AnnotationOnLaterLine(t *testing.T) {
	p := model.NewProblemBuilder("t", "tip", model.CodeSubjectNotSeparateFromBody, "Subject\nBody").
		WithAnnotation("Missing blank line", 8, 4).
		Build()

	out := NewRenderer(true).Render(p)
	lines := strings.Split(out, "\n")

	require.Greater(t, len(lines), 2)
	assert.Equal(t, "  | Subject", lines[1])
	assert.Equal(t, "  | Body", lines[2])
	assert.Equal(t, "  | ^^^^ Missing blank line", lines[3])
}

func TestRenderer_RenderAll(t *testing.T) {
	out := NewRenderer(true).RenderAll([]model.Problem{sampleProblem(), sampleProblem()})
	assert.Equal(t, 2, strings.Count(out, "(wip-commit)"))
}

func TestRenderJSON(t *testing.T) {
	t.Run("no problems is a valid report", func(t *testing.T) {
		out, err := RenderJSON(nil)
		require.NoError(t, err)
		assert.Contains(t, out, `"valid": true`)
		assert.Contains(t, out, `"problems": []`)
	})

	t.Run("problems round-trip through the report", func(t *testing.T) {
		out, err := RenderJSON([]model.Problem{sampleProblem()})
		require.NoError(t, err)

		var report Report
		require.NoError(t, json.UnmarshalFromString(out, &report))
		assert.False(t, report.Valid)
		require.Len(t, report.Problems, 1)

		entry := report.Problems[0]
		assert.Equal(t, "wip-commit", entry.Code)
		assert.Equal(t, "https://example.com/help", entry.URL)
		require.Len(t, entry.Annotations, 1)
		assert.Equal(t, ReportAnnotation{Label: "Work in progress", Offset: 0, Length: 4}, entry.Annotations[0])
	})
}
