// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/apicore/core/config"
//
//	type DispatchConfig struct {
//		ErrorKeyPrefix  string `env:"API_ERROR_KEY_PREFIX" envDefault:"api.errorcode."`
//		SystemErrorCode int    `env:"API_SYSTEM_ERROR_CODE" envDefault:"500"`
//	}
//
//	func main() {
//		var cfg DispatchConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 DispatchConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 DispatchConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type CatalogConfig struct {
//		DefaultLocale string `env:"API_DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&DispatchConfig{})
//	config.MustLoad(&CatalogConfig{})
package config
