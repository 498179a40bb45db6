package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicore/core/codec"
	"github.com/dmitrymomot/apicore/core/command"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := command.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "api.errorcode.", cfg.ErrorKeyPrefix)
	assert.Equal(t, 500, cfg.SystemErrorCode)
	assert.Equal(t, codec.FormatJSON, cfg.Format())
	assert.Equal(t, "en", cfg.Locale().String())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := command.DefaultConfig()
	cfg.DefaultFormat = "yaml"
	assert.ErrorIs(t, cfg.Validate(), codec.ErrUnsupportedFormat)
	assert.Equal(t, codec.FormatJSON, cfg.Format())

	cfg = command.DefaultConfig()
	cfg.DefaultLocale = "not a locale!"
	assert.Error(t, cfg.Validate())
	assert.Equal(t, "en", cfg.Locale().String())

	cfg = command.DefaultConfig()
	cfg.DefaultFormat = "application/xml"
	cfg.DefaultLocale = "de-CH"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, codec.FormatXML, cfg.Format())
	assert.Equal(t, "de-CH", cfg.Locale().String())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("API_ERROR_KEY_PREFIX", "errors.")
	t.Setenv("API_SYSTEM_ERROR_CODE", "9000")
	t.Setenv("API_DEFAULT_FORMAT", "xml")

	cfg, err := command.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "errors.", cfg.ErrorKeyPrefix)
	assert.Equal(t, 9000, cfg.SystemErrorCode)
	assert.Equal(t, codec.FormatXML, cfg.Format())
	assert.Equal(t, "en", cfg.DefaultLocale)
}
