package command

import (
	"context"
	"fmt"
	"reflect"
)

// chainMiddleware applies multiple middleware in order.
// The first middleware in the slice is the outermost (executed first).
func chainMiddleware(handler Handler, middleware []Middleware) Handler {
	// Reverse order required: wrapping innermost first makes it execute last
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}

// safeHandle executes a handler with panic recovery.
// A panic is converted into an error matching ErrSystem.
func safeHandle(ctx context.Context, handler Handler, cmd *Command) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("%w: handler %s %s panicked: %v", ErrSystem, cmd.ID, cmd.Version, r)
		}
	}()
	return handler.Handle(ctx, cmd.Operation, cmd)
}

// isNil reports whether a handler result carries no response,
// including typed nil pointers returned through the any result.
func isNil(resp any) bool {
	if resp == nil {
		return true
	}
	rv := reflect.ValueOf(resp)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
