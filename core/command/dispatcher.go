package command

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/apicore/core/codec"
	"github.com/dmitrymomot/apicore/core/logger"
	"github.com/dmitrymomot/apicore/core/message"
	"github.com/dmitrymomot/apicore/core/model"
)

// Dispatcher runs commands through their registered handlers.
// It is immutable after construction and safe for concurrent use;
// each dispatch call is synchronous and owns its command.
//
// Example:
//
//	registry := command.MustRegistry(
//		command.Binding{ID: "Ping", Version: "v1", Handler: command.Operations{
//			command.OpGet: ping,
//		}},
//	)
//	dispatcher := command.NewDispatcher(registry,
//		command.WithMessages(catalog),
//		command.WithLogger(log),
//	)
//
//	cmd := command.NewCommand("Ping", "v1", command.OpGet)
//	_ = dispatcher.Dispatch(ctx, cmd)
//	w.Write([]byte(cmd.RawResponseBody))
type Dispatcher struct {
	registry   *Registry
	codecs     *codec.Set
	normalizer *Normalizer
	resolver   message.Resolver
	middleware []Middleware
	logger     *slog.Logger
	cfg        Config

	defaultFormat codec.Format
	defaultLocale language.Tag
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		codecs:   codec.DefaultSet(),
		logger:   slog.Default(),
		cfg:      DefaultConfig(),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.registry == nil {
		d.registry = NewBuilder().Build()
	}

	if err := d.cfg.Validate(); err != nil {
		d.logger.Warn("invalid dispatcher config, using defaults",
			logger.Component("dispatcher"),
			logger.Error(err))
		d.cfg = DefaultConfig()
	}
	d.defaultFormat = d.cfg.Format()
	d.defaultLocale = d.cfg.Locale()

	if d.normalizer == nil {
		d.normalizer = NewNormalizer(
			WithResolver(d.resolver),
			WithKeyPrefix(d.cfg.ErrorKeyPrefix),
			WithSystemCode(d.cfg.SystemErrorCode),
		)
	}

	return d
}

// Registry returns the registry the dispatcher resolves commands from.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch executes cmd and always leaves a serialized response in cmd.RawResponseBody.
// Any failure, handler resolution included, is normalized into an error response.
// The returned error is non-nil only when the error response itself cannot be encoded.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd *Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	err := d.Execute(ctx, cmd)
	if err == nil {
		return nil
	}
	return d.fail(ctx, cmd, err)
}

// Execute runs the dispatch stages without the error path:
// format defaults, handler resolution, request decoding, handler invocation,
// default response and response encoding. The first failing stage aborts
// the run and its error is returned.
func (d *Dispatcher) Execute(ctx context.Context, cmd *Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	start := time.Now()

	cmd.applyFormatDefaults(d.defaultFormat)

	binding, err := d.registry.Resolve(cmd.ID, cmd.Version)
	if err != nil {
		d.logger.WarnContext(ctx, "command not resolved",
			logger.Command(cmd.ID),
			logger.Version(cmd.Version),
			logger.CorrelationID(cmd.CorrelationID),
			logger.Error(err))
		return err
	}

	if err := d.decode(binding, cmd); err != nil {
		return err
	}

	resp, err := d.invoke(WithCommand(ctx, cmd), binding.Handler, cmd)
	if err != nil {
		return err
	}
	if isNil(resp) {
		resp = model.Success()
	}
	cmd.ResponseModel = resp

	if err := d.encode(cmd); err != nil {
		return err
	}

	d.logger.DebugContext(ctx, "command dispatched",
		logger.Command(cmd.ID),
		logger.Version(cmd.Version),
		logger.Operation(cmd.Operation),
		logger.Format("response_format", cmd.ResponseFormat.String()),
		logger.CorrelationID(cmd.CorrelationID),
		logger.Elapsed(start))

	return nil
}

// decode parses the raw request body, if any, into the binding's request model
// and carries over meta values from an already populated model.
func (d *Dispatcher) decode(binding Binding, cmd *Command) error {
	body, ok := cmd.RawRequestBody.Get()
	if !ok {
		return nil
	}

	c, err := d.codecs.Lookup(cmd.RequestFormat)
	if err != nil {
		return err
	}

	req := binding.newRequest()
	if err := c.Decode(body, req); err != nil {
		return err
	}

	model.MergeRequest(req, cmd.RequestModel)
	cmd.RequestModel = req
	return nil
}

func (d *Dispatcher) invoke(ctx context.Context, handler Handler, cmd *Command) (any, error) {
	if len(d.middleware) > 0 {
		handler = chainMiddleware(handler, d.middleware)
	}
	return safeHandle(ctx, handler, cmd)
}

func (d *Dispatcher) encode(cmd *Command) error {
	c, err := d.codecs.Lookup(cmd.ResponseFormat)
	if err != nil {
		return err
	}

	body, err := c.Encode(cmd.ResponseModel)
	if err != nil {
		return err
	}

	cmd.RawResponseBody = body
	return nil
}

// fail runs the error path: normalize cause, store and encode the error response.
func (d *Dispatcher) fail(ctx context.Context, cmd *Command, cause error) error {
	cmd.applyFormatDefaults(d.defaultFormat)

	locale := cmd.Locale
	if locale == language.Und {
		locale = d.defaultLocale
	}

	resp := d.normalizer.Normalize(cause, locale)
	cmd.ResponseModel = resp

	attrs := []any{
		logger.Command(cmd.ID),
		logger.Version(cmd.Version),
		logger.Operation(cmd.Operation),
		logger.Code(resp.Code),
		logger.Locale(locale.String()),
		logger.CorrelationID(cmd.CorrelationID),
		logger.Error(cause),
	}
	if resp.Code == d.normalizer.SystemCode() {
		d.logger.ErrorContext(ctx, "command failed", attrs...)
	} else {
		d.logger.InfoContext(ctx, "command rejected", attrs...)
	}

	if err := d.encode(cmd); err != nil {
		d.logger.ErrorContext(ctx, "error response not encoded",
			logger.Command(cmd.ID),
			logger.Format("response_format", cmd.ResponseFormat.String()),
			logger.Error(err))
		return err
	}
	return nil
}
