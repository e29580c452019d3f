package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"jslex/internal/driver"
	"jslex/internal/observ"
)

func testCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())
	return cmd, &out, &errOut
}

func plainSettings(format string) settings {
	return settings{format: format, color: "off", maxDiagnostics: 100, ui: uiModeOff, quiet: true}
}

func TestPrintFileResultPretty(t *testing.T) {
	cmd, out, errOut := testCommand()
	res := driver.TokenizeSource(context.Background(), "demo.js", []byte("const hello = 1.12;"), driver.Options{})

	failed, err := printFileResult(cmd, plainSettings("pretty"), res, nil)
	require.NoError(t, err)
	require.False(t, failed)
	require.Empty(t, errOut.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "Keyword")
	require.Contains(t, lines[3], "1.12")
}

func TestPrintFileResultError(t *testing.T) {
	cmd, out, errOut := testCommand()
	res := driver.TokenizeSource(context.Background(), "bad.js", []byte("let x = 1.2.3;"), driver.Options{})

	failed, err := printFileResult(cmd, plainSettings("pretty"), res, nil)
	require.NoError(t, err)
	require.True(t, failed)
	require.Contains(t, errOut.String(), "LEX1004")
	require.Contains(t, errOut.String(), "bad.js:1:9")
	// токены до ошибки всё равно печатаются
	require.Contains(t, out.String(), "Identifier")
}

func TestPrintFileResultJSON(t *testing.T) {
	cmd, out, _ := testCommand()
	res := driver.TokenizeSource(context.Background(), "demo.js", []byte("a === b"), driver.Options{})

	_, err := printFileResult(cmd, plainSettings("json"), res, nil)
	require.NoError(t, err)

	var toks []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &toks))
	require.Len(t, toks, 3)
	require.Equal(t, "SEq", toks[1]["symbol"])
}

func TestRunTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("x = 1;"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.js"), []byte("y @ 2;"), 0o600))

	cmd, out, errOut := testCommand()
	failed, err := runTokenizeDir(cmd, plainSettings("pretty"), dir, driver.Options{Jobs: 2}, nil)
	require.NoError(t, err)
	require.True(t, failed)

	text := out.String()
	require.Contains(t, text, "==> ")
	require.Less(t, strings.Index(text, "a.js"), strings.Index(text, "b.js"))
	require.Contains(t, errOut.String(), "LEX1001")
}

func TestRunTokenizeDirJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("var a;"), 0o600))

	cmd, out, _ := testCommand()
	failed, err := runTokenizeDir(cmd, plainSettings("json"), dir, driver.Options{}, observ.NewTimer())
	require.NoError(t, err)
	require.False(t, failed)

	var files []dirFileOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &files))
	require.Len(t, files, 1)
	require.Len(t, files[0].Tokens, 3)
	require.Empty(t, files[0].Error)
}

func TestRenderVersion(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc"}

	var buf bytes.Buffer
	renderVersionPretty(&buf, info, versionOptions{showHash: true, showDate: true})
	require.Equal(t, "jslex 1.2.3 (every token in its place)\ncommit: abc\nbuilt:  unknown\n", buf.String())

	buf.Reset()
	require.NoError(t, renderVersionJSON(&buf, info, versionOptions{showHash: true}))
	var payload versionPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Equal(t, "jslex", payload.Tool)
	require.Equal(t, "abc", payload.GitCommit)
	require.Empty(t, payload.BuildDate)
}
