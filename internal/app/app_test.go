package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxbolgarin/commitlint/internal/format"
	"github.com/maxbolgarin/commitlint/internal/lint"
	"github.com/maxbolgarin/commitlint/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(outputFormat string) *CommitLint {
	return &CommitLint{
		cfg:      Config{Output: OutputConfig{Format: outputFormat}},
		renderer: format.NewRenderer(true),
	}
}

func TestReport_Text(t *testing.T) {
	t.Run("clean run writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestService(FormatText).report(&buf, nil))
		assert.Empty(t, buf.String())
	})

	t.Run("problems are rendered", func(t *testing.T) {
		p := model.NewProblem("A title", "a tip", model.CodeWipCommit, "WIP: x")
		var buf bytes.Buffer
		require.NoError(t, newTestService(FormatText).report(&buf, []model.Problem{p}))
		assert.Contains(t, buf.String(), "A title (wip-commit)")
	})
}

func TestReport_JSON(t *testing.T) {
	t.Run("clean run is still a report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestService(FormatJSON).report(&buf, nil))
		assert.Contains(t, buf.String(), `"valid": true`)
	})

	t.Run("problems land in the report", func(t *testing.T) {
		p := model.NewProblem("A title", "a tip", model.CodeWipCommit, "WIP: x")
		var buf bytes.Buffer
		require.NoError(t, newTestService(FormatJSON).report(&buf, []model.Problem{p}))
		assert.Contains(t, buf.String(), `"valid": false`)
		assert.Contains(t, buf.String(), `"wip-commit"`)
	})
}

func TestReadMessage_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("Add a feature\n"), 0o600))

	raw, err := (&CommitLint{}).readMessage(path)
	require.NoError(t, err)
	assert.Equal(t, "Add a feature\n", raw)

	_, err = (&CommitLint{}).readMessage(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCommitLint_Lints(t *testing.T) {
	s := &CommitLint{lints: lint.Defaults()}
	assert.True(t, s.Lints().Equal(lint.Defaults()))
}
