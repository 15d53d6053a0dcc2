package xlog

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogColor, "")

	cfg := ConfigFromEnv()
	assert.Equal(t, Config{Level: "debug", Format: FormatJSON, Color: ColorAuto}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParseLevel(t *testing.T) {
	type testRow struct {
		input  string
		expect zerolog.Level
	}

	testData := [...]testRow{
		{input: "trace", expect: zerolog.TraceLevel},
		{input: "DEBUG", expect: zerolog.DebugLevel},
		{input: " info ", expect: zerolog.InfoLevel},
		{input: "warning", expect: zerolog.WarnLevel},
		{input: "error", expect: zerolog.ErrorLevel},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			level, err := ParseLevel(row.input)
			require.NoError(t, err)
			assert.Equal(t, row.expect, level)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
	_, err = ParseLevel("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig.Validate())
	assert.Error(t, Config{Level: "info", Format: "xml", Color: ColorAuto}.Validate())
	assert.Error(t, Config{Level: "info", Format: FormatJSON, Color: "rainbow"}.Validate())
	assert.Error(t, Config{Level: "nope", Format: FormatJSON, Color: ColorAuto}.Validate())
}

func TestNew_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: FormatJSON, Color: ColorNever}, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("k", "v").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNew_Console(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	logger, err := New(Config{Level: "trace", Format: FormatConsole, Color: ColorAuto}, &buf)
	require.NoError(t, err)

	logger.Trace().Int("bits", 14).Msg("encoded")
	assert.Contains(t, buf.String(), "encoded")
	assert.Contains(t, buf.String(), "bits=14")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "yaml", Color: ColorAuto}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	assert.True(t, UseColor(ColorAlways, &bytes.Buffer{}))
	assert.False(t, UseColor(ColorNever, &bytes.Buffer{}))
	assert.False(t, UseColor(ColorAuto, &bytes.Buffer{}))
}
