package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jslex/internal/source"
	"jslex/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит результаты токенизации на диске по хешу содержимого.
// Кэшируются только файлы, отсканированные без ошибок.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// TokenPayload is the on-disk record for one file.
type TokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Trivia bool
	Path   string // для отладки, на ключ не влияет
	Tokens []token.Token
}

// OpenTokenCache initializes a cache at $XDG_CACHE_HOME/<app>
// (or ~/.cache/<app>).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app))
}

// NewTokenCache creates a cache rooted at dir.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// cacheKey: H(content hash || schema || trivia). Trivia меняет состав токенов,
// поэтому это разные записи.
func cacheKey(content [32]byte, trivia bool) [32]byte {
	h := sha256.New()
	_, _ = h.Write(content[:])
	_, _ = h.Write([]byte{byte(tokenCacheSchemaVersion >> 8), byte(tokenCacheSchemaVersion)})
	if trivia {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (c *TokenCache) pathFor(key [32]byte) string {
	// подкаталог "tokens": удобнее чистить руками
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// Put serializes tokens of file and writes them atomically.
func (c *TokenCache) Put(file *source.File, trivia bool, tokens []token.Token) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(file.Hash, trivia))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload := TokenPayload{
		Schema: tokenCacheSchemaVersion,
		Trivia: trivia,
		Path:   file.Path,
		Tokens: tokens,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get looks up the tokens of file. Spans are rebased onto file.ID, since the
// cached stream may have been produced for another FileSet.
func (c *TokenCache) Get(file *source.File, trivia bool) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(cacheKey(file.Hash, trivia)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload TokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", f.Name(), err)
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Trivia != trivia {
		return nil, false, nil
	}

	for i := range payload.Tokens {
		payload.Tokens[i].Span.File = file.ID
		for j := range payload.Tokens[i].Leading {
			payload.Tokens[i].Leading[j].Span.File = file.ID
		}
	}
	return payload.Tokens, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
