package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/config"
	"github.com/aidanlsb/tripbook/internal/model"
	"github.com/aidanlsb/tripbook/internal/parser"
	"github.com/aidanlsb/tripbook/internal/storage"
	"github.com/aidanlsb/tripbook/internal/syntax"
	"github.com/aidanlsb/tripbook/internal/testutil"
	"github.com/aidanlsb/tripbook/internal/ui"
)

const (
	addZoo    = "add n/Singapore Zoo p/9 c/62693411 a/80 Mandai Lake Rd t/animals"
	addGarden = "add n/Gardens by the Bay p/7 c/65206848 a/18 Marina Gardens Dr"
)

// captureJSON collects everything written as a JSON response while fn runs.
func captureJSON(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	defer func() { stdout = prev }()
	fn()
	return buf.String()
}

// writeTestConfig puts a config in a temp dir so catalog, history and
// exports all land there.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("history_limit = 5\n"), 0o644))
	return path
}

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	prevStdout := stdout
	stdout = &out
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		stdout = prevStdout
		jsonOutput = false
		configPath = ""
		dataPathFlag = ""
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

type testResponse struct {
	OK    bool       `json:"ok"`
	Data  resultData `json:"data"`
	Error *struct {
		Code       string            `json:"code"`
		Message    string            `json:"message"`
		Details    map[string]string `json:"details"`
		Suggestion string            `json:"suggestion"`
	} `json:"error"`
	Meta *Meta `json:"meta"`
}

func decode(t *testing.T, out string) testResponse {
	t.Helper()
	var resp testResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func verbArgs(cfgPath, line string) []string {
	return append([]string{"--json", "--config", cfgPath}, strings.Fields(line)...)
}

func TestOneShotVerbsPersistBetweenRuns(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, verbArgs(cfgPath, addZoo)...)
	require.NoError(t, err)
	resp := decode(t, out)
	assert.True(t, resp.OK)
	assert.Contains(t, resp.Data.Feedback, "New attraction added: Singapore Zoo")
	require.Len(t, resp.Data.Attractions, 1)
	assert.Equal(t, []string{"animals"}, resp.Data.Attractions[0].Tags)
	assert.Equal(t, "phone", resp.Data.Attractions[0].ContactKind)
	assert.Nil(t, resp.Data.Attractions[0].OpenNow)

	out, err = runCLI(t, verbArgs(cfgPath, "list")...)
	require.NoError(t, err)
	resp = decode(t, out)
	require.Len(t, resp.Data.Attractions, 1)
	assert.Equal(t, 1, resp.Meta.Count)
	assert.FileExists(t, filepath.Join(filepath.Dir(cfgPath), config.DefaultDataFile))
}

func TestAttractionViewDerivedFields(t *testing.T) {
	a := testutil.NewAttraction(t, "Gardens").
		WithHours("09:00-17:00").
		WithPrice("30 SGD").
		Build()

	noon := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newAttractionView(2, a, noon)
	assert.Equal(t, 2, v.Index)
	assert.Equal(t, "email", v.ContactKind)
	assert.Equal(t, "SGD", v.Currency)
	assert.Equal(t, 30.0, v.PriceAmount)
	require.NotNil(t, v.OpenNow)
	assert.True(t, *v.OpenNow)

	v = newAttractionView(2, a, noon.Add(6*time.Hour))
	require.NotNil(t, v.OpenNow)
	assert.False(t, *v.OpenNow)
}

func TestOneShotErrorsCarryCodes(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, verbArgs(cfgPath, "add n/Zoo")...)
	require.ErrorIs(t, err, errReported)
	resp := decode(t, out)
	assert.False(t, resp.OK)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrParse, resp.Error.Code)
	assert.True(t, strings.HasPrefix(resp.Error.Message, parser.MessageInvalidCommandFormat))
	assert.Equal(t, "add", resp.Error.Details["verb"])

	out, err = runCLI(t, verbArgs(cfgPath, "delete 3")...)
	require.Error(t, err)
	resp = decode(t, out)
	assert.Equal(t, ErrCommand, resp.Error.Code)
	assert.Equal(t, commands.MessageInvalidAttractionDisplayedIndex, resp.Error.Message)
}

func TestOneShotText(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := runCLI(t, "--config", cfgPath, "add", "n/Singapore", "Zoo", "p/9", "c/62693411", "a/80", "Mandai")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfgPath, "find", "zoo")
	require.NoError(t, err)
	assert.Contains(t, out, ui.SymbolSuccess+" "+fmt.Sprintf(commands.MessageAttractionsListedOverview, 1))
	assert.Contains(t, out, "Singapore Zoo")
}

func TestDataFlagOverridesConfig(t *testing.T) {
	cfgPath := writeTestConfig(t)
	data := filepath.Join(t.TempDir(), "elsewhere.yaml")

	_, err := runCLI(t, append([]string{"--data", data}, verbArgs(cfgPath, addZoo)...)...)
	require.NoError(t, err)

	_, exists, err := storage.New(data, "").Load()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(cfgPath), config.DefaultDataFile))
}

func TestReplUsesDisplayedIndexes(t *testing.T) {
	cfgPath := writeTestConfig(t)
	loaded, err := config.LoadFrom(cfgPath)
	require.NoError(t, err)
	prevCfg := cfg
	cfg = loaded
	t.Cleanup(func() { cfg = prevCfg })

	s, err := openSession(context.Background())
	require.NoError(t, err)
	defer s.Close()

	input := strings.Join([]string{
		addZoo,
		addGarden,
		"find garden",
		"delete 1",
		"frobnicate",
		"list",
		"exit",
		"clear",
	}, "\n")

	var out bytes.Buffer
	err = repl(context.Background(), strings.NewReader(input), &out, s, nil, ui.NewDisplayContextWithWidth(100), false)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Deleted Address: Gardens by the Bay")
	assert.Contains(t, text, ui.SymbolError+" Unknown command: frobnicate")
	assert.Contains(t, text, "Exiting tripbook")
	assert.NotContains(t, text, "Catalog has been cleared!", "lines after exit are not run")

	remaining := s.logic.FilteredAttractions()
	require.Len(t, remaining, 1)
	assert.Equal(t, "Singapore Zoo", remaining[0].Name().String())

	entries, err := s.logic.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 5, "history_limit caps the listing")
}

func TestReplStopsWhenContextCancelled(t *testing.T) {
	cfgPath := writeTestConfig(t)
	loaded, err := config.LoadFrom(cfgPath)
	require.NoError(t, err)
	prevCfg := cfg
	cfg = loaded
	t.Cleanup(func() { cfg = prevCfg })

	s, err := openSession(context.Background())
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	require.NoError(t, repl(ctx, r, &out, s, nil, ui.NewDisplayContextWithWidth(100), false))
}

func TestReadLinesStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lr := readLines(ctx, strings.NewReader("exit\nlist\nclear\n"))

	assert.Equal(t, "exit", <-lr.Lines)
	cancel()

	select {
	case <-lr.done:
	case <-time.After(5 * time.Second):
		t.Fatal("reader still waiting to hand over a line after cancel")
	}
	assert.NoError(t, lr.Err())
}

func TestReadLinesEndOfInput(t *testing.T) {
	lr := readLines(context.Background(), strings.NewReader("list\nexit"))

	var got []string
	for line := range lr.Lines {
		got = append(got, line)
	}
	assert.Equal(t, []string{"list", "exit"}, got)
	assert.NoError(t, lr.Err())
}

func TestReplReloadsChangedFile(t *testing.T) {
	cfgPath := writeTestConfig(t)
	loaded, err := config.LoadFrom(cfgPath)
	require.NoError(t, err)
	prevCfg := cfg
	cfg = loaded
	t.Cleanup(func() { cfg = prevCfg })

	s, err := openSession(context.Background())
	require.NoError(t, err)
	defer s.Close()

	other, err := openSession(context.Background())
	require.NoError(t, err)
	defer other.Close()
	_, err = other.logic.Execute(context.Background(), addZoo)
	require.NoError(t, err)

	r, w := io.Pipe()
	reloads := make(chan struct{})
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- repl(context.Background(), r, &out, s, reloads, ui.NewDisplayContextWithWidth(100), false)
	}()

	reloads <- struct{}{}
	_, err = io.WriteString(w, "exit\n")
	require.NoError(t, err)
	require.NoError(t, <-done)
	_ = w.Close()

	assert.Contains(t, out.String(), "Catalog file changed on disk; reloaded.")
	assert.Len(t, s.logic.FilteredAttractions(), 1)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"duplicate prefix", &parser.ParseError{Err: &syntax.DuplicatePrefixError{Prefixes: []syntax.Prefix{syntax.PrefixName}}}, ErrDuplicatePrefix},
		{"unknown", &parser.UnknownCommandError{Verb: "x"}, ErrUnknownCommand},
		{"invalid value", &parser.ParseError{Err: &model.ValidationError{Field: "name"}}, ErrInvalidValue},
		{"format", &parser.ParseError{Message: parser.MessageInvalidCommandFormat}, ErrParse},
		{"duplicate identity", &model.DuplicateIdentityError{Entity: model.EntityAttraction}, ErrDuplicateIdentity},
		{"duplicate reference", &model.DuplicateReferenceError{}, ErrDuplicateIdentity},
		{"referenced", &model.ReferentialIntegrityError{}, ErrReferenced},
		{"not found", &model.NotFoundError{Entity: model.EntityLocation}, ErrNotFound},
		{"invariant", &model.InvariantViolationError{}, ErrInvariantViolation},
		{"command", &commands.Error{Message: "bad"}, ErrCommand},
		{"permission", fmt.Errorf("saved\n%w", &storage.PersistenceError{PermissionDenied: true, Err: os.ErrPermission}), ErrPersistencePermission},
		{"persistence", &storage.PersistenceError{Err: os.ErrClosed}, ErrPersistence},
		{"path", fmt.Errorf("export: %w", &os.PathError{Op: "open", Path: "x", Err: os.ErrPermission}), ErrFileWriteError},
		{"other", fmt.Errorf("boom"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripbook", "config.toml")

	out, err := runCLI(t, "--json", "--config", path, "config", "init")
	require.NoError(t, err)
	var created struct {
		OK   bool `json:"ok"`
		Data struct {
			ConfigPath string `json:"config_path"`
			Created    bool   `json:"created"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.True(t, created.Data.Created)
	assert.Equal(t, path, created.Data.ConfigPath)
	assert.FileExists(t, path)

	out, err = runCLI(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(filepath.Dir(path), config.DefaultDataFile))
	assert.Contains(t, out, "history_limit")
}

func TestVerbCommandsRegistered(t *testing.T) {
	for _, name := range commands.AllCommandNames() {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		switch name {
		case "exit":
			assert.Same(t, rootCmd, cmd, "exit only exists inside the shell")
		case "help":
			// cobra's own help command
		default:
			assert.Equal(t, name, cmd.Name())
		}
	}
}
