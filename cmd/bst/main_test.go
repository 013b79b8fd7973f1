package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/segmentio/bst/container/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"bst"}, args...))
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	out, err := runApp(t, "build", "7", "6", "5", "4", "3", "2", "1", "4")
	require.NoError(err)

	assert.Contains(out, "Tree balance status: Balanced\n")
	assert.Contains(out, "Level Order: 4 2 6 1 3 5 7\n")
	assert.Contains(out, "Pre Order: 4 2 1 3 6 5 7\n")
	assert.Contains(out, "Post Order: 1 3 2 5 7 6 4\n")
	assert.Contains(out, "In Order: 1 2 3 4 5 6 7\n")
}

func TestBuildCommandInvalidValue(t *testing.T) {
	_, err := runApp(t, "build", "1", "two", "3")
	require.ErrorContains(t, err, `invalid tree value "two"`)
}

func TestDemoCommand(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	out, err := runApp(t, "--log-level", "debug", "demo", "--seed", "42", "--size", "20", "--print-tree")
	require.NoError(err)

	assert.Contains(out, "Initial tree balance status: Balanced\n")
	assert.Contains(out, "Tree balance status after adding large numbers: Unbalanced\n")
	assert.Contains(out, "Tree balance status after rebalancing: Balanced\n")
	assert.Contains(out, "[R]")

	inOrder := []string{}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "In Order: ") {
			inOrder = append(inOrder, line)
		}
	}
	require.Len(inOrder, 2)
	assert.True(strings.HasSuffix(inOrder[1], " 150 200 250 300"), inOrder[1])
}

func TestDemoCommandInvalidFlags(t *testing.T) {
	_, err := runApp(t, "demo", "--max", "0")
	require.Error(t, err)

	_, err = runApp(t, "--log-level", "loud", "demo")
	require.ErrorContains(t, err, "invalid log level")
}

func TestRenderTree(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("(empty)\n", renderTree(tree.New[int]()))

	tr := tree.New(1, 2, 3, 4, 5)
	tr.Delete(5)
	out := renderTree(tr)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(lines, tr.Len())
	assert.Equal("3", lines[0])
	assert.Contains(out, "[R]")
	assert.Contains(out, "[L]")
	// the right subtree is drawn first
	assert.Less(strings.Index(out, "4"), strings.Index(out, "2"))
}

func TestRandomValues(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	values, err := randomValues(50, 10, 7)
	require.NoError(err)
	require.Len(values, 50)
	for _, v := range values {
		assert.GreaterOrEqual(v, 0)
		assert.Less(v, 10)
	}

	again, err := randomValues(50, 10, 7)
	require.NoError(err)
	assert.Equal(values, again)

	values, err = randomValues(0, 10, 0)
	require.NoError(err)
	assert.Empty(values)

	_, err = randomValues(-1, 10, 0)
	assert.Error(err)
}
