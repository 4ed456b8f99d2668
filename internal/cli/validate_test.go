package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".texpath.yml")
	writeFile(t, path, "roots:\n  - chapters\n")

	out, err := captureOutput(t, func() error {
		return Validate(path)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Configuration is valid!")
}

func TestValidate_SchemaErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".texpath.yml")
	writeFile(t, path, "unknown_key: value\n")

	out, err := captureOutput(t, func() error {
		return Validate(path)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "❌ Configuration has errors:")
}

func TestValidate_SemanticErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".texpath.yml")
	writeFile(t, path, "roots:\n  - chapters\n  - chapters\n")

	out, err := captureOutput(t, func() error {
		return Validate(path)
	})
	require.Error(t, err)
	assert.Contains(t, out, "Duplicate path entry")
	assert.Contains(t, out, "Found 1 error(s)")
}

func TestValidate_AutoDetect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".texpath.yml"), "roots:\n  - chapters\n")
	t.Chdir(dir)

	out, err := captureOutput(t, func() error {
		return Validate("")
	})
	require.NoError(t, err)
	assert.Contains(t, out, ".texpath.yml")
}

func TestValidate_NoConfigFound(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := captureOutput(t, func() error {
		return Validate("")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config file found")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := captureOutput(t, func() error {
		return Validate(filepath.Join(t.TempDir(), ".texpath.yml"))
	})
	assert.Error(t, err)
}
