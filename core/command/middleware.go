package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/apicore/core/apperror"
	"github.com/dmitrymomot/apicore/core/logger"
	"github.com/dmitrymomot/apicore/core/sanitizer"
	"github.com/dmitrymomot/apicore/core/strategy"
	"github.com/dmitrymomot/apicore/core/validator"
)

// Middleware wraps a Handler to add cross-cutting functionality.
// Middleware can be used for logging, metrics, tracing, validation, etc.
type Middleware func(next Handler) Handler

// LoggingMiddleware returns a middleware that logs handler execution.
// It logs the command, operation, execution duration, and any errors.
// Errors carrying a domain code are logged at Info level, everything else at Error.
//
// Example:
//
//	dispatcher := command.NewDispatcher(registry,
//		command.WithMiddleware(command.LoggingMiddleware(log)),
//	)
func LoggingMiddleware(log *slog.Logger) Middleware {
	if log == nil {
		log = slog.Default()
	}
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, op Operation, cmd *Command) (any, error) {
			start := time.Now()
			attrs := []any{
				logger.Command(cmd.ID),
				logger.Version(cmd.Version),
				logger.Operation(op),
				logger.CorrelationID(cmd.CorrelationID),
			}

			log.DebugContext(ctx, "command started", attrs...)

			resp, err := next.Handle(ctx, op, cmd)
			attrs = append(attrs, logger.Duration(time.Since(start)))

			if err != nil {
				attrs = append(attrs, logger.Error(err))
				// Coded domain errors are expected rejections, not failures.
				if code, ok := apperror.CodeOf(err); ok && code != 0 {
					log.InfoContext(ctx, "command rejected", append(attrs, logger.Code(code))...)
				} else {
					log.ErrorContext(ctx, "command failed", attrs...)
				}
				return resp, err
			}

			log.InfoContext(ctx, "command completed", attrs...)
			return resp, nil
		})
	}
}

// ValidationMiddleware returns a middleware that runs the registry's rules over the
// request model before the handler. The first rejecting rule aborts the command and
// its error reaches the error path unchanged.
func ValidationMiddleware(rules *validator.Registry) Middleware {
	return func(next Handler) Handler {
		if rules == nil {
			return next
		}
		return HandlerFunc(func(ctx context.Context, op Operation, cmd *Command) (any, error) {
			if cmd.RequestModel != nil {
				if _, err := rules.Validate(ctx, cmd.RequestModel); err != nil {
					return nil, err
				}
			}
			return next.Handle(ctx, op, cmd)
		})
	}
}

// SanitizeMiddleware returns a middleware that applies the `sanitize` struct tags of the
// request model before the handler. Place it ahead of ValidationMiddleware so rules see
// cleaned values.
func SanitizeMiddleware() Middleware {
	chain := strategy.NewChain(sanitizer.Unit())
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, op Operation, cmd *Command) (any, error) {
			if _, err := chain.Run(ctx, cmd.RequestModel); err != nil {
				return nil, err
			}
			return next.Handle(ctx, op, cmd)
		})
	}
}
