package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHeuristic_knownNames(t *testing.T) {
	for _, name := range []string{heuristicRandom, heuristicTwoClause, heuristicDLIS, heuristicJW} {
		h, err := resolveHeuristic(name)
		require.NoError(t, err, "resolveHeuristic(%q)", name)
		assert.NotNil(t, h)
	}
}

func TestResolveHeuristic_unknownName(t *testing.T) {
	_, err := resolveHeuristic("NotARealHeuristic")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestNewRootCommand_requiresFlags(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err, "Execute() with no flags should fail required-flag validation")
}

func TestRun_endToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.cnf")
	require.NoError(t, os.WriteFile(path, []byte("p cnf 1 1\n1 0\n"), 0o644))

	err := run(&options{heuristics: heuristicRandom, filename: path, seed: 1})
	require.NoError(t, err)
}

func TestRun_unknownHeuristic(t *testing.T) {
	err := run(&options{heuristics: "bogus", filename: "unused"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownHeuristic)
}
