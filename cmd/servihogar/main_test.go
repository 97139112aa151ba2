package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/servihogar/internal/config"
	"github.com/jask/servihogar/internal/seed"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SERVIHOGAR_CONFIG", "")
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestViewsCommand(t *testing.T) {
	out, err := execute(t, "views")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "onboarding"))
	assert.Contains(t, out, "Explore services")
}

func TestSeedCommandRoundTrips(t *testing.T) {
	out, err := execute(t, "seed")
	require.NoError(t, err)
	got, err := seed.Decode([]byte(out))
	require.NoError(t, err)
	want, err := seed.Default()
	require.NoError(t, err)
	assert.Equal(t, want.DemoProfile, got.DemoProfile)
	assert.Len(t, got.Offers, len(want.Offers))
}

func TestSeedCommandReadsConfiguredPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SERVIHOGAR_SEED_PATH", filepath.Join(dir, "missing.yaml"))
	_, err := execute(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed")
}

func TestConfigInitWritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh", "servihogar.toml")
	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.UI.Width)

	_, err = execute(t, "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, config.Save(config.Config{UI: config.UIConfig{Width: 72}}, path))
	out, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.UI.Width)
}

func TestConfigInitCreatesEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SERVIHOGAR_CONFIG", path)
	chdir(t, t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)
}

func TestOtherCommandsNeedExistingConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "views")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestDotEnvOverridesConfig(t *testing.T) {
	out, err := executeWithEnvFile(t, "SERVIHOGAR_UI_WIDTH=90\n", "config", "init")
	require.NoError(t, err)
	path := strings.TrimSpace(strings.TrimPrefix(out, "wrote "))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.UI.Width)
}

func executeWithEnvFile(t *testing.T, env string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SERVIHOGAR_CONFIG", "")
	t.Setenv("SERVIHOGAR_UI_WIDTH", "")
	os.Unsetenv("SERVIHOGAR_UI_WIDTH")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	chdir(t, dir)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
