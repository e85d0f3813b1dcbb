package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hillpath/config"
	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

// execute runs the root command with args and stdin, returning stdout,
// stderr and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "hillpath", root.Use)
	assert.NotEmpty(t, root.Short)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["solve"])
	assert.True(t, names["version"])
}

func TestSolve_File(t *testing.T) {
	path := writeTemp(t, "input.txt", example)
	out, _, err := execute(t, "", "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "part1 result = 31\npart2 result = 29\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := execute(t, example, "solve", "--part", "1")
	require.NoError(t, err)
	assert.Equal(t, "part1 result = 31\n", out)

	out, _, err = execute(t, example, "solve", "-", "-p", "2")
	require.NoError(t, err)
	assert.Equal(t, "part2 result = 29\n", out)
}

func TestSolve_Draw(t *testing.T) {
	out, _, err := execute(t, example, "solve", "--part", "1", "--draw")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6, "result line plus five grid rows")
	assert.Equal(t, "part1 result = 31", lines[0])
	assert.Equal(t, 1, strings.Count(out, "E"))
}

func TestSolve_ConfigAndOverrides(t *testing.T) {
	input := writeTemp(t, "input.txt", example)
	cfgPath := writeTemp(t, "hillpath.yaml", "input: "+input+"\npart: 2\nlog:\n  level: debug\n")

	out, errOut, err := execute(t, "", "solve", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "part2 result = 29\n", out)
	assert.Contains(t, errOut, "heightmap parsed", "debug logs go to stderr")

	out, _, err = execute(t, "", "solve", "--config", cfgPath, "--part", "1")
	require.NoError(t, err)
	assert.Equal(t, "part1 result = 31\n", out, "flag overrides the config file")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, example, "solve", "--part", "3")
	assert.ErrorIs(t, err, config.ErrBadPart)

	_, _, err = execute(t, example, "solve", "--weighting", "steep")
	assert.ErrorIs(t, err, config.ErrBadWeighting)

	_, _, err = execute(t, "SbE\n", "solve", "--part", "1")
	assert.ErrorIs(t, err, heightmap.ErrUnreachable)

	_, _, err = execute(t, "abc\n", "solve")
	assert.ErrorIs(t, err, heightmap.ErrNoStart)

	_, _, err = execute(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hillpath "+Version+"\n", out)
}
