package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridor = `
sensor:
  latitudes:
    values: [-10, 0, 10]
  longitudes:
    span: {min_deg: -180, max_deg: 180, count: 24}
scene:
  planes:
    inline:
      - {name: floor, point: [0, 0, -1], normal: [0, 0, 1]}
      - {name: left, point: [0, 2, 0], normal: [0, -1, 0]}
      - {name: right, point: [0, -2, 0], normal: [0, 1, 0]}
trajectory:
  - position: [0, 0, 0]
  - position: [3, 0.5, 0]
    axis: [0, 0, 1]
    angle_deg: 30
output:
  dir: out
  max_range: 10
  profile_row: 1
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidateCmd(t *testing.T) {
	assert.NoError(t, ValidateCmd{Config: writeConfig(t, corridor)}.Run())
	assert.Error(t, ValidateCmd{Config: writeConfig(t, "sensor: {}\n")}.Run())
}

func TestScanCmd(t *testing.T) {
	path := writeConfig(t, corridor)
	require.NoError(t, ScanCmd{Config: path}.Run())

	latest := filepath.Join(filepath.Dir(path), "out", "latest")
	for _, name := range []string{"corridor.yaml", "ranges_000.png", "ranges_001.png", "profile_000.png", "profile_001.png"} {
		_, err := os.Stat(filepath.Join(latest, name))
		assert.NoError(t, err, name)
	}
}

func TestScanCmdProfileRowOutOfRange(t *testing.T) {
	path := writeConfig(t, strings.Replace(corridor, "profile_row: 1", "profile_row: 3", 1))
	assert.ErrorContains(t, ScanCmd{Config: path, SkipImage: true}.Run(), "profile_row")
}
