package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/codec"
	"github.com/katalvlaran/chembalance/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "latex", cfg.Output.Style)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "first-seen", cfg.Builder.ElementOrder)
	assert.Positive(t, cfg.Batch.Workers)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "chembalance.yaml", `
output:
  style: unicode
  format: json
builder:
  element_order: alphabetical
batch:
  workers: 3
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "unicode", cfg.Output.Style)
	assert.Equal(t, 3, cfg.Batch.Workers)
	f, err := cfg.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, codec.FormatJSON, f)
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	opts, err := cfg.BalanceOptions()
	require.NoError(t, err)
	res, err := balance.Balance("Fe + O2 --> Fe2O3", opts...)
	require.NoError(t, err)
	assert.Equal(t, "4Fe + 3O2 → 2Fe2O3", res.Balanced)
	assert.Equal(t, []string{"Fe", "O"}, res.Elements)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "c.yml", "output:\n  style: plain\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Output.Style)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "c.jsonc", `{
  // comments and trailing commas are fine
  "output": {"style": "plain", "format": "cbor",},
  /* block */
  "batch": {"workers": 2},
}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Output.Style)
	assert.Equal(t, "cbor", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Batch.Workers)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Output, cfg.Output)
}

func TestLoad_Env(t *testing.T) {
	path := writeFile(t, "env.yaml", "batch:\n  workers: 7\n")
	t.Setenv(config.EnvVar, path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Batch.Workers)

	t.Setenv(config.EnvVar, "")
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Batch.Workers, cfg.Batch.Workers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "c.toml", "x = 1"))
	assert.ErrorIs(t, err, config.ErrUnsupportedExtension)

	_, err = config.Load(writeFile(t, "c.yaml", "output:\n  colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	_, err = config.Load(writeFile(t, "c.json", `{"batch": {"threads": 2}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threads")

	tests := map[string]string{
		"style":   "output:\n  style: html\n",
		"format":  "output:\n  format: xml\n",
		"order":   "builder:\n  element_order: hill\n",
		"workers": "batch:\n  workers: 0\n",
		"level":   "log:\n  level: loud\n",
		"logfmt":  "log:\n  format: logfmt\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "c.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestRead_DefersValidation(t *testing.T) {
	path := writeFile(t, "c.yaml", "output:\n  style: html\n")

	cfg, err := config.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Output.Style)
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg.Output.Style = "plain"
	require.NoError(t, cfg.Validate())

	_, err = config.Read(writeFile(t, "c.yaml", "output:\n  colour: red\n"))
	assert.Error(t, err, "decoding errors are not deferred")
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log = config.LogConfig{Level: "info", Format: "json"}

	var buf bytes.Buffer
	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown", slog.Int("n", 1))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"n":1`)
}
