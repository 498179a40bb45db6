// Package command routes API commands to versioned handlers and turns every outcome
// into a serialized response.
//
// A Command names a handler by (id, version) and carries the operation, the raw request
// body, the wire formats and, after dispatch, the response. Handlers are registered
// once at startup; the registry and the dispatcher are immutable afterwards and safe
// for concurrent use. Dispatch is synchronous: it runs in the caller's goroutine and
// creates no goroutines of its own.
//
// # Core Concepts
//
//   - Command: one API call. Built with NewCommand and filled by the transport layer.
//   - Operation: create, get, modify or delete, parsed from HTTP-style verbs with
//     ParseOperation (POST, GET, PUT, DELETE).
//   - Binding: the handler and request model factory registered for an (id, version).
//   - Registry: immutable map of bindings, resolved per command.
//   - Dispatcher: runs a command through decoding, middleware, the handler and encoding,
//     and normalizes failures into error responses.
//
// # Quick Start
//
//	import "github.com/dmitrymomot/apicore/core/command"
//
//	type PingRequest struct {
//		model.Request
//		Message string `json:"message" xml:"message"`
//	}
//
//	type PingResponse struct {
//		model.Response
//		Echo string `json:"echo" xml:"echo"`
//	}
//
//	registry := command.MustRegistry(command.Binding{
//		ID:         "Ping",
//		Version:    "v1",
//		NewRequest: command.RequestOf[PingRequest](),
//		Handler: command.Operations{
//			command.OpCreate: func(ctx context.Context, cmd *command.Command) (any, error) {
//				req, err := command.RequestAs[*PingRequest](cmd)
//				if err != nil {
//					return nil, err
//				}
//				return &PingResponse{Echo: req.Message}, nil
//			},
//		},
//	})
//
//	dispatcher := command.NewDispatcher(registry)
//
//	cmd := command.NewCommand("Ping", "v1", command.OpCreate).
//		WithBody(`{"message":"hi"}`)
//	if err := dispatcher.Dispatch(ctx, cmd); err != nil {
//		return err // only when the error response itself cannot be encoded
//	}
//	// cmd.RawResponseBody == `{"code":0,"echo":"hi"}`
//
// # Registration
//
// Bindings are collected through a Builder or passed to NewRegistry. Registering the
// same (id, version) pair twice fails with ErrDuplicateRegistration, and a binding
// without id, version or handler fails with ErrInvalidBinding. MustRegistry panics
// instead and suits package-level wiring:
//
//	b := command.NewBuilder()
//	if err := b.Register(orderV1); err != nil {
//		return err
//	}
//	if err := b.Register(orderV2); err != nil {
//		return err
//	}
//	registry := b.Build()
//
//	registry.Commands()        // ["Order"]
//	registry.Versions("Order") // ["v1", "v2"]
//
// NewRequest is the request model factory of a binding. RequestOf[T] returns a
// factory producing *T; bindings without one decode into a bare *model.Request.
//
// # Dispatch
//
// Dispatcher.Execute runs the stages strictly in order, each one able to fail:
//
//  1. apply format defaults (JSON unless configured otherwise);
//  2. resolve the handler, failing with ErrUnknownCommand or ErrUnknownVersion
//     before any parsing;
//  3. decode the raw body, if present, into the binding's request model and merge
//     paging, sorting, search and field values already parsed from the query;
//  4. invoke the handler through the middleware, recovering panics as ErrSystem;
//  5. substitute model.Success() for a nil response, typed nil pointers included;
//  6. encode the response into RawResponseBody.
//
// A command without a body skips decoding and keeps whatever RequestModel the
// transport set, typically the result of model.ParseQuery:
//
//	cmd := command.NewCommand("Order", "v1", command.OpGet)
//	cmd.RequestModel = model.ParseQuery(r.URL.Query())
//
// The dispatching command is attached to the handler context, so code deep in the
// call stack can reach it with FromContext or CorrelationID.
//
// # Error Handling
//
// Dispatcher.Dispatch wraps Execute with the error path. Any failure is normalized
// into a model.ErrorResponse and encoded in the response format:
//
//   - errors carrying an apperror code keep that code;
//   - everything else, unknown commands and handler panics included, gets the
//     system code (500 by default);
//   - the message is resolved for "api.errorcode.<code>" in the command locale,
//     falling back to the error text when no message is configured.
//
//	catalog, err := message.New(
//		message.WithMessages(language.German, map[string]any{
//			"api": map[string]any{"errorcode": map[string]any{"404": "Nicht gefunden"}},
//		}),
//	)
//	dispatcher := command.NewDispatcher(registry, command.WithMessages(catalog))
//
//	cmd := command.NewCommand("Order", "v1", command.OpGet).WithLocale(language.German)
//	_ = dispatcher.Dispatch(ctx, cmd)
//	// {"code":404,"message":"Nicht gefunden"}
//
// The error description keeps the original error text for logs and is never sent
// over the wire. Domain rejections are logged at Info level, system failures at Error.
//
// Operations maps each operation to its own function; operations without an entry
// fail with ErrMethodUnsupported and take the system error path.
//
// # Middleware
//
// Middleware wraps every handler and is fixed at construction with WithMiddleware.
// The first middleware is the outermost:
//
//	dispatcher := command.NewDispatcher(registry,
//		command.WithMiddleware(
//			command.LoggingMiddleware(log),
//			command.SanitizeMiddleware(),
//			command.ValidationMiddleware(rules),
//		),
//	)
//
// Built-in middleware:
//   - LoggingMiddleware: logs start, completion and rejection with timing.
//   - SanitizeMiddleware: applies `sanitize` struct tags to the request model.
//   - ValidationMiddleware: runs a validator.Registry over the request model, struct
//     tag checks included when the registry was built with validator.WithStructTags.
//
// Custom middleware has the same shape:
//
//	func AuthMiddleware(next command.Handler) command.Handler {
//		return command.HandlerFunc(func(ctx context.Context, op command.Operation, cmd *command.Command) (any, error) {
//			if !allowed(ctx, cmd.ID, op) {
//				return nil, apperror.New(403, "forbidden")
//			}
//			return next.Handle(ctx, op, cmd)
//		})
//	}
//
// # Configuration
//
// Config reads the dispatcher settings from the environment:
//
//	API_ERROR_KEY_PREFIX   message key prefix (default "api.errorcode.")
//	API_SYSTEM_ERROR_CODE  code of failures without a domain code (default 500)
//	API_DEFAULT_FORMAT     json or xml (default json)
//	API_DEFAULT_LOCALE     locale used when a command has none (default en)
//
//	cfg, err := command.LoadConfig()
//	if err != nil {
//		return err
//	}
//	dispatcher := command.NewDispatcher(registry, command.WithConfig(cfg))
//
// A config that fails validation is replaced by DefaultConfig with a warning.
package command
