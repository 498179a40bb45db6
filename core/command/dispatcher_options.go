package command

import (
	"log/slog"

	"github.com/dmitrymomot/apicore/core/codec"
	"github.com/dmitrymomot/apicore/core/message"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCodecs sets the codec table. Defaults to codec.DefaultSet().
func WithCodecs(codecs *codec.Set) Option {
	return func(d *Dispatcher) {
		if codecs != nil {
			d.codecs = codecs
		}
	}
}

// WithNormalizer sets the error normalizer.
// When omitted, one is built from the configuration and WithMessages.
func WithNormalizer(n *Normalizer) Option {
	return func(d *Dispatcher) {
		d.normalizer = n
	}
}

// WithMessages sets the resolver of the default normalizer.
// Ignored when WithNormalizer is used.
func WithMessages(r message.Resolver) Option {
	return func(d *Dispatcher) {
		d.resolver = r
	}
}

// WithLogger sets the logger for the dispatcher.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMiddleware sets middleware for the dispatcher.
// Middleware is applied to all handlers in the order provided.
// Middleware must be configured at construction time and cannot be changed later.
//
// Example:
//
//	dispatcher := command.NewDispatcher(registry,
//		command.WithMiddleware(
//			command.LoggingMiddleware(log),
//			command.ValidationMiddleware(rules),
//		),
//	)
func WithMiddleware(middleware ...Middleware) Option {
	return func(d *Dispatcher) {
		d.middleware = append(d.middleware, middleware...)
	}
}

// WithConfig sets the dispatcher configuration. Defaults to DefaultConfig().
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) {
		d.cfg = cfg
	}
}
