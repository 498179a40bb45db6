package command

import "context"

type commandCtx struct{}

// WithCommand attaches the command being dispatched to the context.
func WithCommand(ctx context.Context, cmd *Command) context.Context {
	return context.WithValue(ctx, commandCtx{}, cmd)
}

// FromContext returns the command being dispatched, if any.
func FromContext(ctx context.Context) (*Command, bool) {
	cmd, ok := ctx.Value(commandCtx{}).(*Command)
	return cmd, ok && cmd != nil
}

// CorrelationID extracts the correlation ID of the command in ctx.
// Returns empty string if not present.
func CorrelationID(ctx context.Context) string {
	if cmd, ok := FromContext(ctx); ok {
		return cmd.CorrelationID
	}
	return ""
}
