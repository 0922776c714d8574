package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, profile.DefaultElementNames(), cfg.Elements)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("log_level: debug\nunknown_attributes: ignore\nelements:\n  megaphone: fx\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, UnknownIgnore, cfg.UnknownAttributes)
	assert.Equal(t, "fx", cfg.Elements.Megaphone)
	assert.Equal(t, "animationTree", cfg.Elements.Animation)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"level", "log_level: loud", "log_level"},
		{"policy", "unknown_attributes: panic", "unknown_attributes"},
		{"unknown key", "colour: red", "colour"},
		{"duplicate names", "elements:\n  animation: x\n  megaphone: x", "distinct"},
		{"empty name", "elements:\n  equalizer: ''", "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goxlr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: /tmp/p.xml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/p.xml", cfg.Profile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "warn"
	logger := cfg.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.Contains(t, buf.String(), "shown")
}

func TestProfileOptionsIgnoreUnknown(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.UnknownAttributes = UnknownIgnore
	logger := cfg.Logger(&buf)

	p := profile.New(cfg.ProfileOptions(logger)...)
	require.NoError(t, p.ReadXML(strings.NewReader(`<ValueTreeRoot><animationTree bogus="1"/></ValueTreeRoot>`)))
	assert.Empty(t, buf.String())

	cfg.UnknownAttributes = UnknownLog
	p = profile.New(cfg.ProfileOptions(logger)...)
	require.NoError(t, p.ReadXML(strings.NewReader(`<ValueTreeRoot><animationTree bogus="1"/></ValueTreeRoot>`)))
	assert.Contains(t, buf.String(), "bogus")
}
