// Package logger provides slog attribute helpers with stable keys for command dispatch logging.
//
// Helpers return an empty slog.Attr when there is nothing to log, so call sites never need
// nil or empty checks:
//
//	log.ErrorContext(ctx, "command failed",
//		logger.Command(cmd.ID),
//		logger.Version(cmd.Version),
//		logger.Operation(cmd.Operation),
//		logger.Code(resp.Code),
//		logger.Error(err),
//	)
//
// slog handlers skip empty attributes, so optional values like logger.CorrelationID("")
// disappear from the output.
package logger
