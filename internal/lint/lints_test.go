package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLints_SetSemantics(t *testing.T) {
	s := NewLints(WipCommit, WipCommit, DuplicatedTrailers, WipCommit)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(WipCommit))
	assert.True(t, s.Contains(DuplicatedTrailers))
	assert.False(t, s.Contains(NotEmojiLog))
}

func TestLints_SliceUsesCatalogOrder(t *testing.T) {
	forward := NewLints(DuplicatedTrailers, SubjectEndsWithPeriod, WipCommit)
	backward := NewLints(WipCommit, SubjectEndsWithPeriod, DuplicatedTrailers)

	expected := []Lint{DuplicatedTrailers, SubjectEndsWithPeriod, WipCommit}
	assert.Equal(t, expected, forward.Slice())
	assert.Equal(t, expected, backward.Slice())
	assert.True(t, forward.Equal(backward))
}

func TestFromNames(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		s, errs := FromNames([]string{"wip-commit", "duplicated-trailers"})
		require.Empty(t, errs)
		assert.True(t, s.Equal(NewLints(WipCommit, DuplicatedTrailers)))
	})

	t.Run("unknown name does not discard known ones", func(t *testing.T) {
		s, errs := FromNames([]string{"subject-longer-than-72-characters", "not-a-real-lint"})

		require.Len(t, errs, 1)
		var unknownErr UnknownLintError
		require.ErrorAs(t, errs[0], &unknownErr)
		assert.Equal(t, "not-a-real-lint", unknownErr.Name)

		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains(SubjectLongerThan72Characters))
	})

	t.Run("every bad name is reported", func(t *testing.T) {
		_, errs := FromNames([]string{"nope", "also-nope"})
		require.Len(t, errs, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		s, errs := FromNames(nil)
		assert.Empty(t, errs)
		assert.Equal(t, 0, s.Len())
	})
}

func TestLints_NamesRoundTrip(t *testing.T) {
	selections := []Lints{
		NewLints(),
		Defaults(),
		Available(),
		NewLints(WipCommit, JiraIssueKeyMissing, NotConventionalCommit),
	}

	for _, s := range selections {
		restored, errs := FromNames(s.Names())
		require.Empty(t, errs)
		assert.True(t, restored.Equal(s))
	}
}

func TestLints_MergeAndSubtract(t *testing.T) {
	a := NewLints(WipCommit, DuplicatedTrailers)
	b := NewLints(DuplicatedTrailers, NotEmojiLog)

	merged := a.Merge(b)
	assert.True(t, merged.Equal(NewLints(WipCommit, DuplicatedTrailers, NotEmojiLog)))

	// Merge does not mutate its operands.
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())

	assert.True(t, a.Subtract(b).Equal(NewLints(WipCommit)))
	assert.True(t, b.Subtract(a).Equal(NewLints(NotEmojiLog)))
	assert.Equal(t, 0, a.Subtract(a).Len())
}

func TestDefaultsAndAvailable(t *testing.T) {
	assert.Equal(t, int(lintCount), Available().Len())
	assert.Equal(t, 4, Defaults().Len())
	assert.True(t, Available().Merge(Defaults()).Equal(Available()))
	assert.True(t, Defaults().Subtract(Available()).Equal(NewLints()))
}
