package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblem(t *testing.T) {
	p := NewProblem("title", "tip", CodeWipCommit, "some text")

	assert.Equal(t, "title", p.Title)
	assert.Equal(t, "tip", p.Tip)
	assert.Equal(t, CodeWipCommit, p.Code)
	assert.Equal(t, "some text", p.CommitText)
	assert.Empty(t, p.Annotations)
	assert.Empty(t, p.URL)
}

func TestProblem_Equal(t *testing.T) {
	build := func() Problem {
		return NewProblemBuilder("title", "tip", CodeWipCommit, "text").
			WithURL("https://example.com").
			WithAnnotation("label", 3, 2).
			Build()
	}

	assert.True(t, build().Equal(build()))

	other := build()
	other.Annotations[0].Offset = 4
	assert.False(t, build().Equal(other))

	assert.False(t, build().Equal(NewProblem("title", "tip", CodeWipCommit, "text")))
}

func TestProblemBuilder_WithAnnotation(t *testing.T) {
	p := NewProblemBuilder("t", "tip", CodeWipCommit, "text").
		WithAnnotation("first", 0, 4).
		WithAnnotation("second", 5, 1).
		Build()

	require.Len(t, p.Annotations, 2)
	assert.Equal(t, Annotation{Label: "first", Offset: 0, Length: 4}, p.Annotations[0])
	assert.Equal(t, Annotation{Label: "second", Offset: 5, Length: 1}, p.Annotations[1])
}

func TestProblemBuilder_WithAnnotationForLine(t *testing.T) {
	long := strings.Repeat("y", 80)
	text := "Subject\n\n" + long

	t.Run("line over the limit", func(t *testing.T) {
		p := NewProblemBuilder("t", "tip", CodeBodyWiderThan72Characters, text).
			WithAnnotationForLine(2, long, 72, "Too long").
			Build()

		require.Len(t, p.Annotations, 1)
		assert.Equal(t, Annotation{Label: "Too long", Offset: 9 + 72, Length: 8}, p.Annotations[0])
	})

	t.Run("line within the limit is skipped", func(t *testing.T) {
		p := NewProblemBuilder("t", "tip", CodeBodyWiderThan72Characters, text).
			WithAnnotationForLine(0, "Subject", 72, "Too long").
			Build()

		assert.Empty(t, p.Annotations)
	})

	t.Run("multibyte characters count once", func(t *testing.T) {
		wide := strings.Repeat("й", 73)
		p := NewProblemBuilder("t", "tip", CodeBodyWiderThan72Characters, wide).
			WithAnnotationForLine(0, wide, 72, "Too long").
			Build()

		require.Len(t, p.Annotations, 1)
		assert.Equal(t, Annotation{Label: "Too long", Offset: 72 * 2, Length: 1}, p.Annotations[0])
	})
}

func TestProblemBuilder_WithAnnotationAtLastLine(t *testing.T) {
	t.Run("multiline message", func(t *testing.T) {
		p := NewProblemBuilder("t", "tip", CodeSignedOffByMissing, "Subject\n\nBody\n").
			WithAnnotationAtLastLine("No sign-off").
			Build()

		require.Len(t, p.Annotations, 1)
		assert.Equal(t, Annotation{Label: "No sign-off", Offset: 9, Length: 4}, p.Annotations[0])
	})

	t.Run("single line", func(t *testing.T) {
		p := NewProblemBuilder("t", "tip", CodeSignedOffByMissing, "Subject").
			WithAnnotationAtLastLine("No sign-off").
			Build()

		require.Len(t, p.Annotations, 1)
		assert.Equal(t, Annotation{Label: "No sign-off", Offset: 0, Length: 7}, p.Annotations[0])
	})
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "wip-commit", CodeWipCommit.String())
	assert.Equal(t, "unknown", CodeUnknown.String())
	assert.Equal(t, "unknown", Code(999).String())
}
