package driver

import (
	"context"
	"errors"
	"strconv"
	"time"

	"jslex/internal/diag"
	"jslex/internal/lexer"
	"jslex/internal/source"
	"jslex/internal/token"
	"jslex/internal/trace"
)

// DefaultMaxDiagnostics is used when Options.MaxDiagnostics is not positive.
const DefaultMaxDiagnostics = 100

// Options configures single-file and directory runs.
type Options struct {
	MaxDiagnostics int
	Trivia         bool
	Jobs           int          // TokenizeDir only; <=0 means GOMAXPROCS
	Cache          *TokenCache  // nil disables caching
	Progress       ProgressSink // may be nil
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // при ошибке: токены до неё
	Bag     *diag.Bag
	Err     error // лексическая ошибка (*lexer.Error), остановившая скан
	Cached  bool
}

// Tokenize loads path and scans it to the end. The returned error is for I/O
// only; a lexical fault is kept in TokenizeResult.Err and in the bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(ctx, fs, fs.Get(fileID), opts), nil
}

// TokenizeSource scans in-memory content (stdin, editors) under name.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeLoaded(ctx, fs, fs.Get(fs.AddVirtual(name, content)), opts)
}

func tokenizeLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	ctx, span := trace.StartSpan(ctx, trace.ScopeRun, "tokenize")
	res := lexFile(ctx, file, opts)
	span.End(file.Path)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  res.tokens,
		Bag:     res.bag,
		Err:     res.err,
		Cached:  res.cached,
	}
}

type fileResult struct {
	tokens []token.Token
	bag    *diag.Bag
	err    error
	cached bool
}

// lexFile: общий путь для Tokenize и воркеров TokenizeDir:
// кэш → лексер → запись в кэш, плюс span трассы и события прогресса.
func lexFile(ctx context.Context, file *source.File, opts Options) fileResult {
	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "lex:"+file.Path)
	started := time.Now()
	bag := diag.NewBag(opts.maxDiagnostics())

	if toks, ok := lookupCache(opts.Cache, file, opts.Trivia, bag); ok {
		span.WithExtra("cache", "hit").WithExtra("tokens", strconv.Itoa(len(toks))).End("")
		emit(opts.Progress, Event{File: file.Path, Stage: StageCache, Status: StatusDone, Tokens: len(toks), Elapsed: time.Since(started)})
		return fileResult{tokens: toks, bag: bag, cached: true}
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})
	tokens, err := scan(ctx, file, opts.Trivia, bag)

	status, detail := StatusDone, ""
	if err != nil {
		status, detail = StatusError, err.Error()
	} else if opts.Cache != nil {
		if cerr := opts.Cache.Put(file, opts.Trivia, tokens); cerr != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheError,
				Message:  "token cache write failed: " + cerr.Error(),
				Primary:  source.Span{File: file.ID},
			})
		}
	}

	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End(detail)
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: status, Tokens: len(tokens), Err: err, Elapsed: time.Since(started)})
	return fileResult{tokens: tokens, bag: bag, err: err}
}

// scan тянет токены до конца ввода. На уровне debug каждый токен: точка трассы.
func scan(ctx context.Context, file *source.File, trivia bool, bag *diag.Bag) ([]token.Token, error) {
	t := trace.FromContext(ctx)
	perToken := t.Level().ShouldEmit(trace.ScopeToken)
	parent := trace.CurrentSpan(ctx).SpanID

	// один отчёт на место ошибки
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	lx := lexer.New(file, lexer.Options{Reporter: reporter, Trivia: trivia})
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if errors.Is(err, lexer.ErrEndOfInput) {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		if perToken {
			trace.Point(t, trace.ScopeToken, tok.Kind.String(), tok.Text, parent)
		}
		tokens = append(tokens, tok)
	}
}

func lookupCache(c *TokenCache, file *source.File, trivia bool, bag *diag.Bag) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	toks, ok, err := c.Get(file, trivia)
	if err != nil {
		// битая запись: просто лексим заново
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOCacheError,
			Message:  "token cache read failed: " + err.Error(),
			Primary:  source.Span{File: file.ID},
		})
		return nil, false
	}
	return toks, ok
}
