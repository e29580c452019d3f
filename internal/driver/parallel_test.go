package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"jslex/internal/lexer"
)

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "b.js", "let b = 2;")
	writeFile(t, dir, "a.js", "const a = 'x';")
	writeFile(t, dir, "sub/c.mjs", "export default c;")
	writeFile(t, dir, "sub/d.cjs", "module.exports = d @;")
	writeFile(t, dir, "notes.txt", "not javascript")
	writeFile(t, dir, "node_modules/dep/index.js", "ignored")
	writeFile(t, dir, ".git/hook.js", "ignored")
	return dir
}

func TestListSourceFiles(t *testing.T) {
	dir := makeTree(t)
	files, err := ListSourceFiles(dir)
	require.NoError(t, err)

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	require.Equal(t, []string{"a.js", "b.js", "sub/c.mjs", "sub/d.cjs"}, rel)
}

func TestTokenizeDirDeterministic(t *testing.T) {
	dir := makeTree(t)

	_, serial, err := TokenizeDir(context.Background(), dir, Options{Jobs: 1})
	require.NoError(t, err)
	_, parallel, err := TokenizeDir(context.Background(), dir, Options{Jobs: 8})
	require.NoError(t, err)

	require.Len(t, serial, 4)
	require.Len(t, parallel, 4)
	for i := range serial {
		require.Equal(t, serial[i].Path, parallel[i].Path)
		require.Equal(t, serial[i].Tokens, parallel[i].Tokens)
	}

	require.NoError(t, serial[0].Err)
	require.Len(t, serial[0].Tokens, 5)
	require.ErrorIs(t, serial[3].Err, lexer.ErrUnrecognizedCharacter)
	require.True(t, serial[3].Bag.HasErrors())
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := TokenizeDir(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	require.NotNil(t, fs)
	require.Empty(t, results)
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := makeTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := TokenizeDir(ctx, dir, Options{Jobs: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestTokenizeDirProgress(t *testing.T) {
	dir := makeTree(t)
	sink := &recordingSink{}
	_, _, err := TokenizeDir(context.Background(), dir, Options{Progress: sink, Jobs: 2})
	require.NoError(t, err)

	require.Equal(t, 4, sink.count(StatusQueued))
	require.Equal(t, 4, sink.count(StatusWorking))
	require.Equal(t, 3, sink.count(StatusDone))
	require.Equal(t, 1, sink.count(StatusError))
}
