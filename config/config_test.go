package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hillpath/config"
	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hillpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 0, c.Part)
	assert.Equal(t, config.WeightingUnit, c.Weighting)
	assert.Equal(t, 4, c.Connectivity)
	assert.Equal(t, "info", c.Log.Level)
	assert.Empty(t, c.Input)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
input: ./day12.txt
part: 2
weighting: climb
connectivity: 8
draw: true
log:
  level: debug
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./day12.txt", c.Input)
	assert.Equal(t, 2, c.Part)
	assert.Equal(t, config.WeightingClimb, c.Weighting)
	assert.Equal(t, 8, c.Connectivity)
	assert.True(t, c.Draw)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	c, err := config.Load(writeFile(t, "part: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Part)
	assert.Equal(t, config.WeightingUnit, c.Weighting)
	assert.Equal(t, 4, c.Connectivity)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"BadYAML", "part: [1", config.ErrDecode},
		{"BadPart", "part: 3", config.ErrBadPart},
		{"BadWeighting", "weighting: steep", config.ErrBadWeighting},
		{"BadConnectivity", "connectivity: 6", config.ErrBadConnectivity},
		{"BadLogLevel", "log:\n  level: loud", config.ErrBadLogLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrRead)
}

func TestHeightmapOptions(t *testing.T) {
	c := config.Default()
	c.Weighting = config.WeightingClimb
	c.Connectivity = 8

	o := heightmap.DefaultOptions()
	for _, opt := range c.HeightmapOptions() {
		opt(&o)
	}
	assert.Equal(t, heightmap.Conn8, o.Conn)
	assert.Equal(t, int64(3), o.Weighting(5, 1), "climb weighting charges 3 downhill")

	o = heightmap.DefaultOptions()
	for _, opt := range config.Default().HeightmapOptions() {
		opt(&o)
	}
	assert.Equal(t, heightmap.Conn4, o.Conn)
	assert.Equal(t, int64(1), o.Weighting(5, 1))
}
