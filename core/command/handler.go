package command

import (
	"context"
	"fmt"
)

// Handler executes commands of one (id, version) pair.
type Handler interface {
	// Handle performs op for cmd and returns the response model.
	// A nil response means the default success response.
	Handle(ctx context.Context, op Operation, cmd *Command) (any, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, op Operation, cmd *Command) (any, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, op Operation, cmd *Command) (any, error) {
	return f(ctx, op, cmd)
}

// OperationFunc handles a single operation of a command.
type OperationFunc func(ctx context.Context, cmd *Command) (any, error)

// Operations is a Handler routing each operation to its own function.
// Operations without an entry fail with ErrMethodUnsupported.
//
// Example:
//
//	handler := command.Operations{
//		command.OpGet:    getOrder,
//		command.OpCreate: createOrder,
//	}
type Operations map[Operation]OperationFunc

// Handle implements Handler.
func (o Operations) Handle(ctx context.Context, op Operation, cmd *Command) (any, error) {
	fn, ok := o[op]
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrMethodUnsupported, op)
	}
	return fn(ctx, cmd)
}

// Supports reports whether op has a handler function.
func (o Operations) Supports(op Operation) bool {
	return o[op] != nil
}

// RequestAs returns the command's request model as T.
//
// Example:
//
//	func createOrder(ctx context.Context, cmd *command.Command) (any, error) {
//		req, err := command.RequestAs[*OrderRequest](cmd)
//		if err != nil {
//			return nil, err
//		}
//		...
//	}
func RequestAs[T any](cmd *Command) (T, error) {
	var zero T
	if cmd == nil {
		return zero, ErrNilCommand
	}
	v, ok := cmd.RequestModel.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %T", ErrRequestType, zero, cmd.RequestModel)
	}
	return v, nil
}
