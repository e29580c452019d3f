package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"jslex/internal/diag"
	"jslex/internal/lexer"
	"jslex/internal/testkit"
	"jslex/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// recordingSink собирает события прогресса из нескольких горутин
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) count(status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.events {
		if ev.Status == status {
			n++
		}
	}
	return n
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "\xEF\xBB\xBFconst hello = 1.12;\r\n")

	res, err := Tokenize(context.Background(), path, Options{})
	require.NoError(t, err)
	require.NoError(t, res.Err)
	require.Equal(t, 0, res.Bag.Len())
	require.Len(t, res.Tokens, 5)
	require.True(t, res.Tokens[0].IsKeyword(token.Const))
	require.Equal(t, 1.12, res.Tokens[3].Value)
	require.NoError(t, testkit.CheckTokenInvariants(res.Tokens, res.File))
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.js"), Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTokenizeLexicalError(t *testing.T) {
	res := TokenizeSource(context.Background(), "<stdin>", []byte("a = 1.2.3;"), Options{})
	require.ErrorIs(t, res.Err, lexer.ErrMalformedNumber)
	require.Len(t, res.Tokens, 2)
	require.True(t, res.Bag.HasErrors())
	require.Equal(t, diag.LexBadNumber, res.Bag.Items()[0].Code)

	var lexErr *lexer.Error
	require.ErrorAs(t, res.Err, &lexErr)
	require.Equal(t, uint32(5), lexErr.Loc.Start.Col)
}

func TestTokenizeTrivia(t *testing.T) {
	res := TokenizeSource(context.Background(), "t.js", []byte("// hi\nx"), Options{Trivia: true})
	require.NoError(t, res.Err)
	require.Len(t, res.Tokens, 1)
	require.Len(t, res.Tokens[0].Leading, 2)
}

func TestTokenizeMaxDiagnostics(t *testing.T) {
	require.Equal(t, DefaultMaxDiagnostics, Options{}.maxDiagnostics())
	require.Equal(t, 3, Options{MaxDiagnostics: 3}.maxDiagnostics())
}

func TestTokenizeProgress(t *testing.T) {
	sink := &recordingSink{}
	res := TokenizeSource(context.Background(), "p.js", []byte("@"), Options{Progress: sink})
	require.Error(t, res.Err)
	require.Equal(t, 1, sink.count(StatusWorking))
	require.Equal(t, 1, sink.count(StatusError))
}
