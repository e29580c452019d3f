package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jslex/internal/diag"
	"jslex/internal/diagfmt"
	"jslex/internal/driver"
	"jslex/internal/lexer"
	"jslex/internal/observ"
	"jslex/internal/source"
)

var errTokenizeFailed = errors.New("tokenization failed")

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.js|dir|->",
	Short: "Tokenize JavaScript sources",
	Long: `Tokenize breaks a JavaScript file, every .js/.mjs/.cjs file under a directory,
or standard input ("-") into tokens and prints them`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("trivia", false, "attach whitespace and comments to tokens as leading trivia")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel files for directories (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse tokens from the on-disk cache")
	tokenizeCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	timer := observ.NewTimer()
	endConfig := timer.Begin("config")
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	endConfig(s.configPath)
	if s.timings {
		defer func() {
			if err := timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "timings: %v\n", err)
			}
		}()
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Trivia:         s.trivia,
		Jobs:           s.jobs,
	}
	if s.cache {
		cache, cerr := driver.OpenTokenCache("jslex")
		if cerr != nil {
			// без кэша всё равно работаем
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: token cache disabled: %v\n", cerr)
		} else {
			opts.Cache = cache
		}
	}

	target := args[0]
	var failed bool
	if target == "-" {
		content, rerr := io.ReadAll(cmd.InOrStdin())
		if rerr != nil {
			return fmt.Errorf("failed to read stdin: %w", rerr)
		}
		endLex := timer.Begin("tokenize")
		res := driver.TokenizeSource(cmd.Context(), "<stdin>", content, opts)
		endLex(fmt.Sprintf("%d tokens", len(res.Tokens)))
		failed, err = printFileResult(cmd, s, res, timer)
	} else {
		info, serr := os.Stat(target)
		if serr != nil {
			return fmt.Errorf("tokenization failed: %w", serr)
		}
		if info.IsDir() {
			failed, err = runTokenizeDir(cmd, s, target, opts, timer)
		} else {
			endLex := timer.Begin("tokenize")
			res, terr := driver.Tokenize(cmd.Context(), target, opts)
			if terr != nil {
				return fmt.Errorf("tokenization failed: %w", terr)
			}
			note := fmt.Sprintf("%d tokens", len(res.Tokens))
			if res.Cached {
				note += ", cached"
			}
			endLex(note)
			failed, err = printFileResult(cmd, s, res, timer)
		}
	}
	if err != nil {
		return err
	}
	if failed {
		dumpTraceRing(cmd, cmd.ErrOrStderr())
		return errTokenizeFailed
	}
	return nil
}

// printFileResult prints diagnostics to stderr and tokens to stdout.
// failed is true when a lexical error stopped the scan.
func printFileResult(cmd *cobra.Command, s settings, res *driver.TokenizeResult, timer *observ.Timer) (failed bool, err error) {
	defer timer.Begin("output")(s.format)
	if res.Bag.Len() > 0 {
		if err := printDiagnostics(cmd, s, res.Bag, res.FileSet); err != nil {
			return false, err
		}
	}
	out := cmd.OutOrStdout()
	switch s.format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, res.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, res.Tokens)
	}
	return res.Err != nil, err
}

func printDiagnostics(cmd *cobra.Command, s settings, bag *diag.Bag, fs *source.FileSet) error {
	errOut := cmd.ErrOrStderr()
	if s.format == "json" {
		return diagfmt.JSON(errOut, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			Max:              s.maxDiagnostics,
			IncludeNotes:     true,
		})
	}
	diagfmt.Pretty(errOut, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(s.color, os.Stderr),
		Context:   2,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
		Max:       s.maxDiagnostics,
	})
	return nil
}

type dirFileOutput struct {
	Path   string                `json:"path"`
	Cached bool                  `json:"cached,omitempty"`
	Error  string                `json:"error,omitempty"`
	Tokens []diagfmt.TokenOutput `json:"tokens"`
}

func runTokenizeDir(cmd *cobra.Command, s settings, dir string, opts driver.Options, timer *observ.Timer) (bool, error) {
	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
		err     error
	)
	endLex := timer.Begin("tokenize")
	if shouldUseTUI(s.ui) {
		fileSet, results, err = runTokenizeDirWithUI(cmd.Context(), "tokenizing "+dir, dir, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, opts)
	}
	endLex(fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return false, fmt.Errorf("tokenization failed: %w", err)
	}
	defer timer.Begin("output")(s.format)

	// диагностики лексера сводим в один bag; ошибки загрузки без позиции печатаем как есть
	errOut := cmd.ErrOrStderr()
	merged := diag.NewBag(s.maxDiagnostics)
	failed := false
	totalTokens := 0
	for _, r := range results {
		totalTokens += len(r.Tokens)
		if r.Err == nil {
			merged.Merge(r.Bag)
			continue
		}
		failed = true
		var lexErr *lexer.Error
		if errors.As(r.Err, &lexErr) {
			merged.Merge(r.Bag)
			continue
		}
		fmt.Fprintf(errOut, "%s: %v\n", r.Path, r.Err)
	}
	if merged.Len() > 0 {
		merged.Sort()
		if err := printDiagnostics(cmd, s, merged, fileSet); err != nil {
			return failed, err
		}
	}

	out := cmd.OutOrStdout()
	if s.format == "json" {
		files := make([]dirFileOutput, 0, len(results))
		for _, r := range results {
			entry := dirFileOutput{Path: r.Path, Cached: r.Cached, Tokens: make([]diagfmt.TokenOutput, 0, len(r.Tokens))}
			if r.Err != nil {
				entry.Error = r.Err.Error()
			}
			for _, tok := range r.Tokens {
				entry.Tokens = append(entry.Tokens, diagfmt.MakeTokenOutput(tok))
			}
			files = append(files, entry)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(files); err != nil {
			return failed, err
		}
	} else {
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", r.Path)
			if err := diagfmt.FormatTokensPretty(out, r.Tokens); err != nil {
				return failed, err
			}
		}
	}

	if !s.quiet {
		fmt.Fprintf(errOut, "%d file(s), %d token(s)\n", len(results), totalTokens)
	}
	return failed, nil
}
