package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/errors"
	"github.com/amp-labs/tuples/internal/gen"
)

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(defaultConfigFile)

	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_ExplicitMissingFileErrors(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuplegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxArity: 8\ndir: pairs\n"), 0o600))

	cfg, err := loadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxArity)
	assert.Equal(t, "pairs", cfg.Dir)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuplegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxArity: 5\n"), 0o600))

	cfg, err := loadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxArity)
	assert.Equal(t, defaultConfig().Dir, cfg.Dir)
}

func TestLoadConfig_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuplegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxArity: [oops\n"), 0o600))

	_, err := loadConfig(path)

	require.Error(t, err)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuplegen.yaml")
	cfg := config{MaxArity: 12, Dir: "generated"}

	require.NoError(t, cfg.save(path))

	loaded, err := loadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func generated(t *testing.T, maxArity int) []gen.File {
	t.Helper()

	generator, err := gen.New(maxArity)
	require.NoError(t, err)

	files, err := generator.Files()
	require.NoError(t, err)

	return files
}

func TestWriteFiles_ThenCheckIsClean(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := generated(t, 3)

	require.NoError(t, writeFiles(context.Background(), dir, files))
	require.NoError(t, checkFiles(dir, files))

	for _, file := range files {
		onDisk, err := os.ReadFile(filepath.Join(dir, file.Name))

		require.NoError(t, err)
		assert.Equal(t, file.Source, onDisk)
	}
}

func TestWriteFiles_LeavesNoTemporaries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := generated(t, 2)

	require.NoError(t, writeFiles(context.Background(), dir, files))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	assert.Len(t, entries, len(files))
}

func TestCheckFiles_CommittedTreeIsCurrent(t *testing.T) {
	t.Parallel()

	committed := filepath.Join("..", "..", "tuple")

	require.NoError(t, checkFiles(committed, generated(t, gen.DefaultMaxArity)))
}

func TestCheckFiles_ReportsDrift(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := generated(t, 3)

	require.NoError(t, writeFiles(context.Background(), dir, files))

	tampered := filepath.Join(dir, "join_generated.go")
	require.NoError(t, os.WriteFile(tampered, []byte("package tuple\n"), 0o600))

	err := checkFiles(dir, files)

	require.ErrorIs(t, err, errors.ErrDrift)
	assert.Contains(t, err.Error(), "join_generated.go")
}

func TestCheckFiles_ReportsMissingFiles(t *testing.T) {
	t.Parallel()

	err := checkFiles(t.TempDir(), generated(t, 2))

	require.ErrorIs(t, err, errors.ErrDrift)
	assert.Contains(t, err.Error(), "tuple_generated.go")
}

func TestWriteFiles_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := writeFiles(ctx, t.TempDir(), generated(t, 2))

	require.ErrorIs(t, err, context.Canceled)
}
