// Package testutil holds shared helpers for CLI command tests
package testutil

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbanned/internal/config"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/persistence"
	"github.com/thenoetrevino/kanbanned/internal/storage"
)

// CLIEnv points the CLI at an isolated config and SQLite database
type CLIEnv struct {
	Dir    string
	DBPath string
}

// SetupCLITest writes a config under a temp XDG_CONFIG_HOME whose storage
// is a fresh SQLite file. Tests using it cannot run in parallel.
func SetupCLITest(t *testing.T) *CLIEnv {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.EnvStorage, "")
	t.Setenv(config.EnvThemeFile, "")

	env := &CLIEnv{Dir: dir, DBPath: filepath.Join(dir, "kanbanned.db")}

	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendSQLite
	cfg.Storage.Path = env.DBPath
	require.NoError(t, cfg.Save())

	return env
}

func (e *CLIEnv) engine(t *testing.T) *persistence.Engine {
	t.Helper()
	store, err := storage.OpenSQLite(context.Background(), e.DBPath)
	require.NoError(t, err)
	return persistence.NewEngine(store)
}

// Seed saves data as the persisted document
func (e *CLIEnv) Seed(t *testing.T, data models.AppData) {
	t.Helper()
	engine := e.engine(t)
	defer func() { require.NoError(t, engine.Close(context.Background())) }()

	res := engine.Save(context.Background(), data)
	require.True(t, res.Success, "seed save failed: %s", res.Error)
}

// Data loads the persisted document
func (e *CLIEnv) Data(t *testing.T) models.AppData {
	t.Helper()
	engine := e.engine(t)
	defer func() { require.NoError(t, engine.Close(context.Background())) }()

	return engine.Load(context.Background()).Data
}

// ExecuteCommand runs cmd with args and returns what it wrote to stdout and
// stderr
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := sonic.ConfigStd.UnmarshalFromString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
