package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "jslex.toml"

// fileConfig mirrors jslex.toml. Pointer fields distinguish "not set" from
// zero values.
type fileConfig struct {
	Lexer  lexerConfig  `toml:"lexer"`
	Output outputConfig `toml:"output"`
	Run    runConfig    `toml:"run"`
}

type lexerConfig struct {
	Trivia *bool `toml:"trivia"`
}

type outputConfig struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics *int   `toml:"max_diagnostics"`
}

type runConfig struct {
	Jobs  *int   `toml:"jobs"`
	Cache *bool  `toml:"cache"`
	UI    string `toml:"ui"`
}

// settings are the effective values for one tokenize run.
type settings struct {
	format         string
	color          string
	maxDiagnostics int
	trivia         bool
	jobs           int
	cache          bool
	ui             uiMode
	quiet          bool
	timings        bool
	configPath     string // пусто, если файл не найден
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// applyConfig overlays file values onto s for every setting whose flag was
// not given explicitly.
func applyConfig(s *settings, cfg fileConfig, changed func(name string) bool) error {
	if cfg.Lexer.Trivia != nil && !changed("trivia") {
		s.trivia = *cfg.Lexer.Trivia
	}
	if cfg.Output.Format != "" && !changed("format") {
		s.format = cfg.Output.Format
	}
	if cfg.Output.Color != "" && !changed("color") {
		s.color = cfg.Output.Color
	}
	if cfg.Output.MaxDiagnostics != nil && !changed("max-diagnostics") {
		s.maxDiagnostics = *cfg.Output.MaxDiagnostics
	}
	if cfg.Run.Jobs != nil && !changed("jobs") {
		s.jobs = *cfg.Run.Jobs
	}
	if cfg.Run.Cache != nil && !changed("cache") {
		s.cache = *cfg.Run.Cache
	}
	if cfg.Run.UI != "" && !changed("ui") {
		mode, err := readUIMode(cfg.Run.UI)
		if err != nil {
			return err
		}
		s.ui = mode
	}
	return s.validate()
}

func (s *settings) validate() error {
	s.format = strings.ToLower(strings.TrimSpace(s.format))
	switch s.format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format %q (expected pretty|json)", s.format)
	}
	s.color = strings.ToLower(strings.TrimSpace(s.color))
	switch s.color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color mode %q (expected auto|on|off)", s.color)
	}
	if s.maxDiagnostics < 0 {
		return fmt.Errorf("max-diagnostics must not be negative, got %d", s.maxDiagnostics)
	}
	if s.jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", s.jobs)
	}
	return nil
}

// loadSettings reads the tokenize flags and merges jslex.toml under them.
func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Flags()
	var s settings
	var err error

	if s.format, err = flags.GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if s.trivia, err = flags.GetBool("trivia"); err != nil {
		return s, fmt.Errorf("failed to get trivia flag: %w", err)
	}
	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if s.cache, err = flags.GetBool("cache"); err != nil {
		return s, fmt.Errorf("failed to get cache flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}

	root := cmd.Root().PersistentFlags()
	if s.color, err = root.GetString("color"); err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	if s.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	explicit, err := root.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}

	path := explicit
	if path == "" {
		found, ok, err := findConfigFile(".")
		if err != nil {
			return s, err
		}
		if !ok {
			return s, s.validate()
		}
		path = found
	}
	cfg, err := loadConfigFile(path)
	if err != nil {
		return s, err
	}
	s.configPath = path
	return s, applyConfig(&s, cfg, flags.Changed)
}
