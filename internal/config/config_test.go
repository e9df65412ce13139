package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ModeWindow, cfg.Mode)
	assert.Equal(t, 60, cfg.Hz)
	assert.Equal(t, uint64(0), cfg.Frames)
	assert.Equal(t, 480, cfg.Width)
	assert.Equal(t, 360, cfg.Height)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.Status.Enabled)
	assert.Equal(t, "127.0.0.1:8088", cfg.Status.Addr)
	assert.Equal(t, []string{"*"}, cfg.Status.AllowOrigins)
	assert.Equal(t, 10, cfg.Scene.Dancers)
	assert.Equal(t, 6, cfg.Scene.Lights)
	assert.Equal(t, 0.0, cfg.Scene.DriftBound)
	assert.Equal(t, 0.01, cfg.Cycle.Step)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disco.yaml")
	body := `
mode: headless
frames: 120
logLevel: debug
scene:
  dancers: 3
  driftBound: 15
status:
  enabled: true
  addr: ":9000"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, ModeHeadless, cfg.Mode)
	assert.Equal(t, uint64(120), cfg.Frames)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Scene.Dancers)
	assert.Equal(t, 6, cfg.Scene.Lights)
	assert.Equal(t, 15.0, cfg.Scene.DriftBound)
	assert.True(t, cfg.Status.Enabled)
	assert.Equal(t, ":9000", cfg.Status.Addr)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disco.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mode":"headless","hz":30,"scene":{"lights":2}}`), 0644))

	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--mode", "term", "--lights", "4"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, ModeTerm, cfg.Mode)
	assert.Equal(t, 4, cfg.Scene.Lights)
	// Unset flags leave file values alone.
	assert.Equal(t, 30, cfg.Hz)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DISCO_SCENE_DANCERS", "7")
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Scene.Dancers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"--mode", "vr"},
		{"--hz", "0"},
		{"--cycle-step", "0"},
		{"--cycle-step", "1.5"},
		{"--dancers", "-1"},
		{"--width", "0"},
	} {
		fs := Flags()
		require.NoError(t, fs.Parse(args))
		_, err := Load("", fs)
		assert.ErrorIs(t, err, ErrInvalidConfig, "args %v", args)
	}
}
