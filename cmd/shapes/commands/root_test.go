package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTracing(t *testing.T) *int {
	t.Helper()
	var flushed int
	orig := setupTracing
	setupTracing = func(context.Context, string, string) (func(context.Context) error, error) {
		return func(context.Context) error {
			flushed++
			return nil
		}, nil
	}
	t.Cleanup(func() { setupTracing = orig })
	return &flushed
}

func TestRun_FlushesTracesWhenCommandFails(t *testing.T) {
	t.Setenv("SHAPES_VARIANT", "")
	t.Setenv("SHAPES_API_KEY", "")
	flushed := stubTracing(t)
	dir := t.TempDir()

	err := run(context.Background(), []string{
		"--home", dir,
		"--log-file", filepath.Join(dir, "shapes.log"),
		"hello",
	})
	require.ErrorContains(t, err, "missing api_key")
	assert.Equal(t, 1, *flushed)
	assert.Nil(t, shutdownTracing)
}

func TestRun_FlushesTracesOnSuccess(t *testing.T) {
	flushed := stubTracing(t)
	dir := t.TempDir()

	err := run(context.Background(), []string{
		"--home", dir,
		"--log-file", filepath.Join(dir, "shapes.log"),
		"-p", "Correct-Horse-9",
		"profile", "save", "--api-key", "k",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, *flushed)
}
