package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/diperf/config"
)

// Load reads ./diperf.yaml and ./.env, so every test runs in its own empty
// working directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Rounds: 100,
		Format: config.FormatMarkdown,
	}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	inTempDir(t)
	t.Setenv("DIPERF_ROUNDS", "7")
	t.Setenv("DIPERF_FORMAT", " JSON ")
	t.Setenv("DIPERF_ONLY", "dig, fx,,manual")
	t.Setenv("DIPERF_METRICS_FILE", "out.prom")
	t.Setenv("DIPERF_DEBUG", "true")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rounds)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, []string{"dig", "fx", "manual"}, cfg.Only)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
	assert.True(t, cfg.Debug)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := inTempDir(t)
	writeFile(t, filepath.Join(dir, "diperf.yaml"), "rounds: 3\nformat: text\nonly:\n  - odi\n  - custom\n")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, []string{"odi", "custom"}, cfg.Only)
}

func TestLoad_ExplicitFileAndEnvPrecedence(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "bench.yaml")
	writeFile(t, path, "rounds: 3\nout: report.md\n")
	t.Setenv("DIPERF_ROUNDS", "9")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Rounds, "environment wins over the file")
	assert.Equal(t, "report.md", cfg.Out)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	writeFile(t, filepath.Join(dir, ".env"), "DIPERF_ROUNDS=4\n")
	t.Cleanup(func() { _ = os.Unsetenv("DIPERF_ROUNDS") })

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Rounds)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		cfgFile string
		wantMsg string
	}{
		{name: "missing explicit file", cfgFile: "nope.yaml", wantMsg: "read config"},
		{name: "negative rounds", env: map[string]string{"DIPERF_ROUNDS": "-1"}, wantMsg: "rounds must be >= 0"},
		{name: "unknown format", env: map[string]string{"DIPERF_FORMAT": "html"}, wantMsg: `unknown format "html"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inTempDir(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(config.New(), tc.cfgFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	for _, f := range config.Formats {
		assert.NoError(t, config.Config{Format: f}.Validate(), f)
	}
	assert.Error(t, config.Config{Format: ""}.Validate())
	assert.Error(t, config.Config{Rounds: -5, Format: config.FormatText}.Validate())
}
