package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniapp/internal/config"
)

func TestRun_PlaceholderConfigExitsWithConfigStatus(t *testing.T) {
	t.Setenv(config.EnvBotToken, "")
	t.Setenv(config.EnvLaunchURL, "")
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"run"}, &out, &errOut)

	assert.Equal(t, exitConfig, code)
	assert.Contains(t, errOut.String(), "placeholder")
	assert.Contains(t, errOut.String(), config.EnvBotToken)
}

func TestRun_HTTPLaunchURLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("launcher:\n  bot_token: \"123:abc\"\n  launch_url: http://example.com\n"), 0o600))
	t.Setenv(config.EnvBotToken, "")
	t.Setenv(config.EnvLaunchURL, "")
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"run", "--config", path}, &out, &errOut)

	assert.Equal(t, exitConfig, code)
	assert.Contains(t, errOut.String(), "launch_url")
}

func TestRun_Schema(t *testing.T) {
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"schema"}, &out, &errOut)

	assert.Zero(t, code)
	assert.Contains(t, out.String(), "bot_token")
	assert.Contains(t, out.String(), "launch_url")
}

func TestRun_MissingConfigFile(t *testing.T) {
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"run", "--config", filepath.Join(t.TempDir(), "nope.yaml")}, &out, &errOut)

	assert.Equal(t, exitConfig, code)
	assert.Contains(t, errOut.String(), "read config")
}

func TestRun_MalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("launcher:\n  bot_token: [oops\n"), 0o600))
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"run", "--config", path}, &out, &errOut)

	assert.Equal(t, exitConfig, code)
	assert.Contains(t, errOut.String(), "parse config")
}
