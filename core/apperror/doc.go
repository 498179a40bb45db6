// Package apperror provides coded domain errors.
//
// A domain error is raised deliberately by handler or validator code to signal a
// business-rule violation. It carries an explicit integer code that the command
// dispatcher propagates into the error response, together with a localized message
// resolved for that code.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/apicore/core/apperror"
//
//	if order.Total.IsNegative() {
//		return apperror.New(4001, "order total must not be negative")
//	}
//
// Wrapping an underlying cause keeps the chain visible to errors.Is and errors.As:
//
//	if err := repo.Save(ctx, order); err != nil {
//		return apperror.Wrap(4002, "order could not be saved", err)
//	}
//
// Extracting the code from any error:
//
//	if code, ok := apperror.CodeOf(err); ok {
//		log.Info("domain error", "code", code)
//	}
package apperror
