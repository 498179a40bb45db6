package command

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/apicore/core/codec"
	"github.com/dmitrymomot/apicore/core/config"
)

// DefaultErrorKeyPrefix is prepended to error codes to build message keys.
const DefaultErrorKeyPrefix = "api.errorcode."

// DefaultSystemErrorCode is the response code of failures that carry no domain code.
const DefaultSystemErrorCode = 500

// Config holds dispatcher settings loaded from the environment.
type Config struct {
	ErrorKeyPrefix  string `env:"API_ERROR_KEY_PREFIX" envDefault:"api.errorcode."`
	SystemErrorCode int    `env:"API_SYSTEM_ERROR_CODE" envDefault:"500"`
	DefaultFormat   string `env:"API_DEFAULT_FORMAT" envDefault:"json"`
	DefaultLocale   string `env:"API_DEFAULT_LOCALE" envDefault:"en"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		ErrorKeyPrefix:  DefaultErrorKeyPrefix,
		SystemErrorCode: DefaultSystemErrorCode,
		DefaultFormat:   string(codec.DefaultFormat),
		DefaultLocale:   language.English.String(),
	}
}

// LoadConfig reads the dispatcher configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the format and locale can be parsed.
func (c Config) Validate() error {
	if _, err := codec.ParseFormat(c.DefaultFormat); err != nil {
		return fmt.Errorf("invalid default format: %w", err)
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("invalid default locale %q: %w", c.DefaultLocale, err)
	}
	return nil
}

// Format returns the parsed default format, or JSON when unset or invalid.
func (c Config) Format() codec.Format {
	f, err := codec.ParseFormat(c.DefaultFormat)
	if err != nil {
		return codec.DefaultFormat
	}
	return f
}

// Locale returns the parsed default locale, or English when unset or invalid.
func (c Config) Locale() language.Tag {
	tag, err := language.Parse(c.DefaultLocale)
	if err != nil {
		return language.English
	}
	return tag
}
