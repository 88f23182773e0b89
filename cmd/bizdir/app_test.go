package main

import (
	"io"
	"strings"
	"testing"

	"github.com/jacksmith/bizdir/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("verbose enables debug", func(t *testing.T) {
		logger, err := newLogger(config.DefaultConfig(), true, false)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("config level applies", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.LogLevel = "error"
		logger, err := newLogger(cfg, false, false)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
		assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("full screen logs nothing", func(t *testing.T) {
		logger, err := newLogger(config.DefaultConfig(), true, true)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.LogLevel = "loud"
		_, err := newLogger(cfg, false, true)
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestSetupForFullScreen(t *testing.T) {
	a := newApp(strings.NewReader(""), io.Discard, io.Discard)
	a.opts.configPath = writeConfig(t, "")
	a.opts.verbose = true

	require.NoError(t, a.setup(true))
	assert.False(t, a.logger.Core().Enabled(zapcore.DebugLevel),
		"stderr shares the terminal with the full-screen page")
	assert.Equal(t, 6, a.store.Len())
}
