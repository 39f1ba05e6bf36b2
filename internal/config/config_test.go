package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniapp/internal/config"
	"miniapp/internal/domain"
)

func validLauncher() config.Launcher {
	l := config.Default().Launcher
	l.BotToken = "123456:ABC-DEF"
	l.LaunchURL = "https://example.org/miniapp/"
	return l
}

func TestValidateLauncher_DefaultsArePlaceholders(t *testing.T) {
	err := config.ValidateLauncher(config.Default().Launcher)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "launcher.bot_token is still set to its placeholder value")
	assert.Contains(t, err.Error(), "launcher.launch_url is still set to its placeholder value")
}

func TestValidateLauncher_OK(t *testing.T) {
	assert.NoError(t, config.ValidateLauncher(validLauncher()))
}

func TestValidateLauncher_Rejects(t *testing.T) {
	cases := map[string]func(*config.Launcher){
		"empty token":     func(l *config.Launcher) { l.BotToken = "" },
		"placeholder url": func(l *config.Launcher) { l.LaunchURL = config.PlaceholderLaunchURL },
		"plain http url":  func(l *config.Launcher) { l.LaunchURL = "http://example.org/" },
		"unknown mode":    func(l *config.Launcher) { l.Mode = "carrier-pigeon" },
		"webhook no url":  func(l *config.Launcher) { l.Mode = config.ModeWebhook },
		"zero timeout":    func(l *config.Launcher) { l.Timeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			l := validLauncher()
			mutate(&l)
			assert.ErrorIs(t, config.ValidateLauncher(l), config.ErrInvalid)
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "miniapp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
launcher:
  bot_token: from-file
  launch_url: https://file.example.org/
  mode: webhook
  webhook:
    public_url: https://hook.example.org/webhook
  polling:
    timeout: 10s
host:
  theme:
    color_scheme: dark
  location:
    disabled: true
`), 0o600))

	t.Setenv(config.EnvBotToken, "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Launcher.BotToken)
	assert.Equal(t, "https://file.example.org/", cfg.Launcher.LaunchURL)
	assert.Equal(t, config.ModeWebhook, cfg.Launcher.Mode)
	assert.Equal(t, 10*time.Second, cfg.Launcher.Polling.Timeout)
	assert.Equal(t, time.Second, cfg.Launcher.Polling.Pause, "unset keys keep their defaults")
	assert.Equal(t, domain.ColorSchemeDark, cfg.Host.Theme.ColorScheme)
	assert.True(t, cfg.Host.Location.Disabled)
	assert.NoError(t, config.ValidateLauncher(cfg.Launcher))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("launcher: [unterminated\n"), 0o600))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidateHost_Default(t *testing.T) {
	assert.NoError(t, config.ValidateHost(config.Default()))

	cfg := config.Default()
	cfg.Logging.Level = "loud"
	assert.ErrorIs(t, config.ValidateHost(cfg), config.ErrInvalid)
}

func TestSchema_UsesYAMLNames(t *testing.T) {
	b, err := config.Schema()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"bot_token"`)
	assert.Contains(t, string(b), `"launch_url"`)
	assert.NotContains(t, string(b), `"BotToken"`)
}
