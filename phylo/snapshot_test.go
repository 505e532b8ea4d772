// Package phylo_test: JSON + DOT snapshot round trip.
package phylo_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlgoLab/cppp/phylo"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	src := load(t, matrix4x4)
	require.True(t, phylo.ChooseCurrentComponent(src))

	dir := t.TempDir()
	path, err := phylo.WriteSnapshot(src, dir)
	require.NoError(t, err)

	restored, err := phylo.ReadSnapshot(path)
	require.NoError(t, err)
	require.True(t, phylo.StateEqual(src, restored))
	require.Equal(t, src.Realized, restored.Realized)
	require.Equal(t, src.Outcome, restored.Outcome)
}

func TestSnapshot_RoundTripAfterRealization(t *testing.T) {
	t.Parallel()

	src := load(t, matrix4x4)
	require.True(t, phylo.ChooseCurrentComponent(src))
	dst := phylo.NewBlankState(src.Instance())
	require.NoError(t, phylo.Realize(dst, src, 0))

	path, err := phylo.WriteSnapshot(dst, t.TempDir())
	require.NoError(t, err)
	restored, err := phylo.ReadSnapshot(path)
	require.NoError(t, err)
	require.True(t, phylo.StateEqual(dst, restored))
	require.Equal(t, phylo.OpActivated, restored.Outcome)
	require.NoError(t, restored.Check())
}

func TestSnapshot_FilesOnDisk(t *testing.T) {
	t.Parallel()

	src := load(t, "1 1\n1\n")
	dir := t.TempDir()
	path, err := phylo.WriteSnapshot(src, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap struct {
		RedBlackFile string `json:"red_black_file"`
		ConflictFile string `json:"conflict_file"`
	}
	require.NoError(t, json.Unmarshal(data, &snap))

	rb, err := os.ReadFile(filepath.Join(dir, snap.RedBlackFile))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(rb), "graph redblack {"))
	require.Contains(t, string(rb), "0 -- 1;")

	_, err = os.Stat(filepath.Join(dir, snap.ConflictFile))
	require.NoError(t, err)
}
