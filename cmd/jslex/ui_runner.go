package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jslex/internal/driver"
	"jslex/internal/source"
	"jslex/internal/ui"
)

type tokenizeDirOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runTokenizeDirWithUI runs driver.TokenizeDir in the background and shows
// per-file progress until it finishes.
func runTokenizeDirWithUI(ctx context.Context, title, dir string, opts driver.Options) (*source.FileSet, []driver.TokenizeDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeDirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.TokenizeDir(ctx, dir, optsCopy)
		outcomeCh <- tokenizeDirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	// файлы появятся в модели по событиям Queued
	model := ui.NewProgressModel(title, nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// после выхода из UI (Ctrl+C) воркеры не должны блокироваться на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
