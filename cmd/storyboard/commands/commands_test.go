// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/storyboard/cmd/storyboard/cli"
	"github.com/bureau-foundation/storyboard/lib/config"
	"github.com/bureau-foundation/storyboard/lib/console"
	"github.com/bureau-foundation/storyboard/lib/model"
	"github.com/bureau-foundation/storyboard/lib/store"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func testEnvironment(t *testing.T, storePath string) *environment {
	t.Helper()
	cfg := config.Default()
	cfg.Store.Path = storePath
	return &environment{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// seedBoard writes one epic with one story to a new state file and
// returns its path.
func seedBoard(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	backend := store.OpenFileBackend(path)
	if _, err := backend.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	board := store.New(backend, nil)
	epicID, err := board.CreateEpic(model.NewEpic("Launch", "Ship the first release"))
	if err != nil {
		t.Fatalf("CreateEpic: %v", err)
	}
	if _, err := board.CreateStory(model.NewStory("Write docs", "User guide"), epicID); err != nil {
		t.Fatalf("CreateStory: %v", err)
	}
	return path
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "db.json")
	env := testEnvironment(t, path)

	var output bytes.Buffer
	if err := runInit(env, &output); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	if got := output.String(); got != "created "+path+" (json)\n" {
		t.Errorf("output = %q", got)
	}
	state, err := store.OpenFileBackend(path).Read()
	if err != nil {
		t.Fatalf("reading initialized file: %v", err)
	}
	if !reflect.DeepEqual(state, model.NewState()) {
		t.Errorf("initialized state = %+v, want empty", state)
	}

	output.Reset()
	if err := runInit(env, &output); err != nil {
		t.Fatalf("second runInit: %v", err)
	}
	if !strings.Contains(output.String(), "already exists") {
		t.Errorf("second output = %q", output.String())
	}
}

func TestRunInit_FormatOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	env := testEnvironment(t, path)
	env.config.Store.Format = "cbor"

	var output bytes.Buffer
	if err := runInit(env, &output); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	if !strings.HasSuffix(output.String(), "(cbor)\n") {
		t.Errorf("output = %q, want cbor", output.String())
	}
}

func TestRunList(t *testing.T) {
	path := seedBoard(t, "db.json")

	var output bytes.Buffer
	if err := runList(testEnvironment(t, path), &output); err != nil {
		t.Fatalf("runList: %v", err)
	}
	rendered := output.String()
	for _, want := range []string{
		" EPICS ",
		"1           | Launch                           | Open             ",
		"[q] quit | [c] create epic | [:id:] navigate to epic",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("list output missing %q\n\n%s", want, rendered)
		}
	}
	if strings.Contains(rendered, "Write docs") {
		t.Error("list output includes stories")
	}
}

func TestRunList_MissingStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	err := runList(testEnvironment(t, path), io.Discard)
	if !errors.Is(err, store.ErrStoreUnavailable) {
		t.Fatalf("runList error = %v, want ErrStoreUnavailable", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("runList created the state file without create_if_missing")
	}
}

func TestRunList_CreateIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	env := testEnvironment(t, path)
	env.config.Store.CreateIfMissing = true

	var output bytes.Buffer
	if err := runList(env, &output); err != nil {
		t.Fatalf("runList: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file not created: %v", err)
	}
	if !strings.Contains(output.String(), " EPICS ") {
		t.Errorf("output = %q", output.String())
	}
}

func TestRunExport_ConvertsEncoding(t *testing.T) {
	source := seedBoard(t, "db.json")
	destination := filepath.Join(t.TempDir(), "db.cbor")

	var output bytes.Buffer
	err := runExport(testEnvironment(t, source), exportRequest{destination: destination, format: "auto"}, &output)
	if err != nil {
		t.Fatalf("runExport: %v", err)
	}
	if want := "exported 1 epics and 1 stories to " + destination + " (cbor)\n"; output.String() != want {
		t.Errorf("output = %q, want %q", output.String(), want)
	}

	original, err := store.OpenFileBackend(source).Read()
	if err != nil {
		t.Fatal(err)
	}
	exported, err := store.OpenFileBackend(destination).Read()
	if err != nil {
		t.Fatalf("reading export as CBOR: %v", err)
	}
	if !reflect.DeepEqual(original, exported) {
		t.Errorf("exported state differs:\ngot  %+v\nwant %+v", exported, original)
	}
}

func TestRunExport_ExistingDestination(t *testing.T) {
	source := seedBoard(t, "db.json")
	destination := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(destination, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	env := testEnvironment(t, source)

	err := runExport(env, exportRequest{destination: destination, format: "auto"}, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("runExport without force = %v, want refusal", err)
	}
	if data, _ := os.ReadFile(destination); string(data) != "keep" {
		t.Errorf("destination overwritten without force: %q", data)
	}

	err = runExport(env, exportRequest{destination: destination, format: "auto", force: true}, io.Discard)
	if err != nil {
		t.Fatalf("runExport with force: %v", err)
	}
	if _, err := store.OpenFileBackend(destination).Read(); err != nil {
		t.Errorf("forced export unreadable: %v", err)
	}
}

func TestRunExport_UsageErrors(t *testing.T) {
	source := seedBoard(t, "db.json")
	env := testEnvironment(t, source)

	requests := map[string]exportRequest{
		"onto itself":    {destination: source, format: "auto", force: true},
		"unknown format": {destination: filepath.Join(t.TempDir(), "x.yaml"), format: "yaml"},
	}
	for name, request := range requests {
		t.Run(name, func(t *testing.T) {
			err := runExport(env, request, io.Discard)
			var usage *cli.UsageError
			if !errors.As(err, &usage) {
				t.Fatalf("runExport error = %v, want *UsageError", err)
			}
		})
	}
}

func TestRunExport_ExplicitFormat(t *testing.T) {
	source := seedBoard(t, "db.json")
	destination := filepath.Join(t.TempDir(), "board.bin")

	err := runExport(testEnvironment(t, source), exportRequest{destination: destination, format: "cbor"}, io.Discard)
	if err != nil {
		t.Fatalf("runExport: %v", err)
	}
	data, err := os.ReadFile(destination)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[0] == '{' {
		t.Errorf("destination does not look like CBOR: %q", data)
	}
}

func TestRunSession_NavigateAndQuit(t *testing.T) {
	path := seedBoard(t, "db.json")

	var output bytes.Buffer
	err := runSession(testEnvironment(t, path), strings.NewReader("1\n2\np\np\nq\n"), &output)
	if err != nil {
		t.Fatalf("runSession: %v", err)
	}
	rendered := output.String()
	for _, want := range []string{" EPICS ", " EPIC ", " STORIES ", " STORY ", "Write docs"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("session output missing %q", want)
		}
	}
}

func TestRunSession_InputClosed(t *testing.T) {
	path := seedBoard(t, "db.json")

	var output bytes.Buffer
	err := runSession(testEnvironment(t, path), strings.NewReader(""), &output)
	if !errors.Is(err, console.ErrInputClosed) {
		t.Fatalf("runSession error = %v, want ErrInputClosed", err)
	}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 1 {
		t.Errorf("session error %T does not carry exit code 1", err)
	}
	if !strings.Contains(output.String(), "Press any key to continue...") {
		t.Errorf("error was not reported on screen:\n%s", output.String())
	}
}

func TestOptions_LoadConfig(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")

	defaults, err := (&options{}).loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !reflect.DeepEqual(defaults, config.Default()) {
		t.Errorf("defaults = %+v, want %+v", defaults, config.Default())
	}

	configPath := filepath.Join(t.TempDir(), "storyboard.yaml")
	contents := "store:\n  path: ${CONFIG_DIR}/board.json\n  create_if_missing: true\nui:\n  color: never\n"
	if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	flags := options{configPath: configPath, logLevel: "debug", color: "always"}
	cfg, err := flags.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if want := filepath.Join(filepath.Dir(configPath), "board.json"); cfg.Store.Path != want {
		t.Errorf("store.path = %q, want %q", cfg.Store.Path, want)
	}
	if !cfg.Store.CreateIfMissing {
		t.Error("create_if_missing lost")
	}
	if cfg.Log.Level != "debug" || cfg.UI.Color != "always" {
		t.Errorf("flag overrides not applied: %+v", cfg)
	}

	flags = options{configPath: configPath, storePath: "other.cbor"}
	cfg, err = flags.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store.Path != "other.cbor" || cfg.UI.Color != "never" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestOptions_LoadConfigInvalid(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")

	_, err := (&options{color: "rainbow", format: "xml"}).loadConfig()
	var usage *cli.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("loadConfig error = %v, want *UsageError", err)
	}
	for _, want := range []string{"ui.color", "store.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}

	if _, err := (&options{configPath: filepath.Join(t.TempDir(), "absent.yaml")}).loadConfig(); err == nil {
		t.Error("loadConfig with missing --config file succeeded")
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		output      string
		interactive bool
		want        slog.Level
	}{
		{"session on stderr clamps debug", "debug", "", true, slog.LevelWarn},
		{"session on stderr clamps info", "info", "", true, slog.LevelWarn},
		{"session on stderr keeps error", "error", "", true, slog.LevelError},
		{"session with log file", "debug", "storyboard.log", true, slog.LevelDebug},
		{"non-interactive on stderr", "debug", "", false, slog.LevelDebug},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Log.Level = test.level
			cfg.Log.Output = test.output
			got, err := logLevel(cfg, test.interactive)
			if err != nil {
				t.Fatalf("logLevel: %v", err)
			}
			if got != test.want {
				t.Errorf("logLevel = %v, want %v", got, test.want)
			}
		})
	}
}

func TestApplyColor(t *testing.T) {
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	applyColor("always")
	if got := lipgloss.ColorProfile(); got != termenv.ANSI256 {
		t.Errorf("profile after always = %v, want ANSI256", got)
	}
	applyColor("auto")
	if got := lipgloss.ColorProfile(); got != termenv.ANSI256 {
		t.Errorf("auto changed an explicit profile to %v", got)
	}
	applyColor("never")
	if got := lipgloss.ColorProfile(); got != termenv.Ascii {
		t.Errorf("profile after never = %v, want Ascii", got)
	}
}

func TestRoot(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")
	root := Root()

	names := make([]string, 0, len(root.Subcommands))
	for _, sub := range root.Subcommands {
		names = append(names, sub.Name)
	}
	if want := []string{"init", "list", "export", "version"}; !reflect.DeepEqual(names, want) {
		t.Errorf("subcommands = %v, want %v", names, want)
	}

	err := root.Execute([]string{"lsit"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "list"`) {
		t.Errorf("Execute(lsit) = %v", err)
	}

	var usage *cli.UsageError
	if err := Root().Execute([]string{"export"}); !errors.As(err, &usage) {
		t.Errorf("export without destination = %v, want *UsageError", err)
	}
	if err := Root().Execute([]string{"list", "extra"}); !errors.As(err, &usage) {
		t.Errorf("list with extra argument = %v, want *UsageError", err)
	}

	missing := filepath.Join(t.TempDir(), "absent.json")
	err = Root().Execute([]string{"list", "--store", missing, "--color", "never"})
	if !errors.Is(err, store.ErrStoreUnavailable) {
		t.Errorf("list on missing store = %v, want ErrStoreUnavailable", err)
	}
}
