package run

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+-[a-z]+-20260304-050607$`), id)
}

func TestCreateDirectory(t *testing.T) {
	logger := golog.NewTestLogger(t)
	base := filepath.Join(t.TempDir(), "runs")

	dir, err := CreateDirectory(base, logger)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir.Path))
	info, err := os.Stat(dir.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	target, err := os.Readlink(filepath.Join(base, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(t, dir.ID, target)
	assert.Equal(t, filepath.Join(dir.Path, "ranges.png"), dir.FilePath("ranges.png"))

	src := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(src, []byte("output: {}\n"), 0644))
	require.NoError(t, dir.CopyFile(src))
	copied, err := os.ReadFile(dir.FilePath("scan.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "output: {}\n", string(copied))

	assert.Error(t, dir.CopyFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
