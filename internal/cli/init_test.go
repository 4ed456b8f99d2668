package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmczar/texpath/internal/config"
	"github.com/tmczar/texpath/internal/derrors"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := captureOutput(t, func() error {
		return Init()
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Created sample config")

	path := filepath.Join(dir, ".texpath.yml")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# texpath configuration file")

	// The sample must itself pass validation.
	result, err := config.Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestInit_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, ".texpath.yml"), "")

	_, err := captureOutput(t, func() error {
		return Init()
	})
	require.Error(t, err)

	var existsErr *derrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
}
