package tsplib_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nntour/tsplib"
)

func TestWriteTour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteTour(&buf, []int{0, 3, 2, 1, 0}))
	require.Equal(t, "0 3 2 1 0\n", buf.String())

	buf.Reset()
	require.NoError(t, tsplib.WriteTour(&buf, nil))
	require.Equal(t, "\n", buf.String())
}

func TestWriteTourFile_CreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "best.txt")
	require.NoError(t, tsplib.WriteTourFile(path, []int{0, 1, 0}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0 1 0\n", string(data))
}

func TestWriteTourFile_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "best.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))

	require.NoError(t, tsplib.WriteTourFile(path, []int{0, 2, 1, 0}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0 2 1 0\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1) // no temporary left behind
}

func TestWriteTourFile_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the result file makes the final rename fail.
	path := filepath.Join(dir, "best.txt")
	require.NoError(t, os.Mkdir(path, 0o755))

	require.Error(t, tsplib.WriteTourFile(path, []int{0, 1, 0}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, entries[0].IsDir())
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errBroken
	}
	w.n--
	return len(p), nil
}

var errBroken = errors.New("broken pipe")

func TestWriteTour_PropagatesWriteError(t *testing.T) {
	require.ErrorIs(t, tsplib.WriteTour(&failWriter{}, []int{0, 1, 0}), errBroken)
}
