package command

import "errors"

var (
	// ErrUnsupportedOperation is returned by ParseOperation for unknown verbs.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrDuplicateRegistration is returned when a (command, version) pair is registered twice.
	ErrDuplicateRegistration = errors.New("duplicate command registration")

	// ErrInvalidBinding is returned for bindings missing an id, a version or a handler.
	ErrInvalidBinding = errors.New("invalid command binding")

	// ErrUnknownCommand is returned when no handler is registered for the command id.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownVersion is returned when the command exists but not in the requested version.
	ErrUnknownVersion = errors.New("unknown command version")

	// ErrMethodUnsupported is returned when a handler does not implement the requested operation.
	ErrMethodUnsupported = errors.New("operation not supported by handler")

	// ErrSystem marks failures that are not domain errors, such as handler panics.
	ErrSystem = errors.New("system error")

	// ErrNilCommand is returned when a nil command is dispatched.
	ErrNilCommand = errors.New("command is nil")

	// ErrRequestType is returned by RequestAs when the request model has another type.
	ErrRequestType = errors.New("unexpected request model type")
)
