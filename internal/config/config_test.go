package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/solid/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "solid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Style)
	assert.Equal(t, 80, cfg.Wrap)
	assert.False(t, cfg.NoColor)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_ReadsYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "log_level: debug\nstyle: dark\nwrap: 100\nno_color: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "dark", cfg.Style)
	assert.Equal(t, 100, cfg.Wrap)
	assert.True(t, cfg.NoColor)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "style: notty\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "notty", cfg.Style)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 80, cfg.Wrap)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level: warn\nstyle: dark\nwrap: 100\n")

	t.Setenv("SOLID_LOG_LEVEL", "debug")
	t.Setenv("SOLID_STYLE", "light")
	t.Setenv("SOLID_WRAP", "72")
	t.Setenv("SOLID_NO_COLOR", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "light", cfg.Style)
	assert.Equal(t, 72, cfg.Wrap)
	assert.True(t, cfg.NoColor)
}

func TestLoad_IgnoresUnparsableEnv(t *testing.T) {
	t.Setenv("SOLID_WRAP", "not-a-number")
	t.Setenv("SOLID_NO_COLOR", "not-a-bool")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Wrap)
	assert.False(t, cfg.NoColor)
}

func TestLoad_BadWrap(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "wrap: -1\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrBadWrap)
}

func TestLoad_BadStyle(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "style: neon\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid style "neon"`)
}

func TestLoad_BadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, ":\n\t::not yaml::\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *config.Config) {}},
		{name: "zero wrap", mutate: func(c *config.Config) { c.Wrap = 0 }, wantErr: true},
		{name: "dark style", mutate: func(c *config.Config) { c.Style = "dark" }},
		{name: "unknown style", mutate: func(c *config.Config) { c.Style = "sepia" }, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
