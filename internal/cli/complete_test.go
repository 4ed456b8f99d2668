package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_Plain(t *testing.T) {
	_, docPath := newProject(t)

	out, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Token:    "",
			Offset:   -1,
			Command:  `\include`,
			LogLevel: "error",
		})
	})
	require.NoError(t, err)

	assert.Contains(t, out, "./\t.\n")
	assert.Contains(t, out, "../\t..\n")
	assert.Contains(t, out, "chapters/\tchapters\n")
	assert.Contains(t, out, "intro.tex\tintro.tex\n")
	assert.Contains(t, out, "main.tex\tmain.tex\n")
	// \include accepts only tex files.
	assert.NotContains(t, out, "notes.txt")
}

func TestComplete_FiltersOnLiveSegment(t *testing.T) {
	_, docPath := newProject(t)

	out, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Token:    "cha",
			Offset:   -1,
			Command:  `\include`,
			LogLevel: "error",
		})
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "chapters/\tchapters", lines[0])
}

func TestComplete_TokenFromOffset(t *testing.T) {
	_, docPath := newProject(t)

	env, err := loadEnvironment(docPath, "error")
	require.NoError(t, err)
	offset := strings.Index(env.doc.Text, "{ch}") + len("{ch")
	require.Greater(t, offset, len("{ch"))

	out, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Offset:   offset,
			LogLevel: "error",
		})
	})
	require.NoError(t, err)

	// The command and the token "ch" both come from the document.
	assert.Contains(t, out, "chapters/\tchapters\n")
	assert.NotContains(t, out, "intro.tex")
}

func TestComplete_OffsetOutsideArgument(t *testing.T) {
	_, docPath := newProject(t)

	_, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Offset:   0,
			LogLevel: "error",
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not inside an argument")
}

func TestComplete_GraphicsScope(t *testing.T) {
	_, docPath := newProject(t)

	out, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Token:    "",
			Offset:   -1,
			Command:  `\includegraphics`,
			LogLevel: "error",
		})
	})
	require.NoError(t, err)

	assert.Contains(t, out, "plot.png\tplot.png\n")
	assert.NotContains(t, out, "draw.txt")
	assert.NotContains(t, out, "intro.tex")
}

func TestComplete_JSON(t *testing.T) {
	_, docPath := newProject(t)

	out, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Token:    "intro",
			Offset:   -1,
			Command:  `\include`,
			Format:   "json",
			LogLevel: "error",
		})
	})
	require.NoError(t, err)

	var proposals []proposalJSON
	require.NoError(t, json.Unmarshal([]byte(out), &proposals))
	require.Len(t, proposals, 1)
	assert.Equal(t, "intro.tex", proposals[0].Insert)
	assert.Equal(t, "intro.tex", proposals[0].Display)
	assert.Equal(t, "document", proposals[0].Icon)
	assert.Equal(t, "file-reference", proposals[0].Behavior)
}

func TestComplete_Pretty(t *testing.T) {
	_, docPath := newProject(t)

	out, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Token:    "cha",
			Offset:   -1,
			Command:  `\include`,
			Format:   "pretty",
			LogLevel: "error",
		})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "chapters")
	assert.Contains(t, out, "chapters/")
}

func TestComplete_UnknownFormat(t *testing.T) {
	_, docPath := newProject(t)

	_, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  docPath,
			Offset:   -1,
			Format:   "xml",
			LogLevel: "error",
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestComplete_MissingDocument(t *testing.T) {
	_, err := captureOutput(t, func() error {
		return Complete(CompleteParams{
			DocPath:  t.TempDir() + "/missing.tex",
			Offset:   -1,
			LogLevel: "error",
		})
	})
	assert.Error(t, err)
}
