package command

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/apicore/core/apperror"
	"github.com/dmitrymomot/apicore/core/message"
	"github.com/dmitrymomot/apicore/core/model"
)

// Normalizer turns any error into an error response.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	resolver   message.Resolver
	prefix     string
	systemCode int
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithResolver sets the message resolver used to localize error messages.
func WithResolver(r message.Resolver) NormalizerOption {
	return func(n *Normalizer) {
		n.resolver = r
	}
}

// WithKeyPrefix sets the prefix of message keys, e.g. "api.errorcode.".
func WithKeyPrefix(prefix string) NormalizerOption {
	return func(n *Normalizer) {
		n.prefix = prefix
	}
}

// WithSystemCode sets the code used for errors that carry no domain code.
func WithSystemCode(code int) NormalizerOption {
	return func(n *Normalizer) {
		if code != model.CodeSuccess {
			n.systemCode = code
		}
	}
}

// NewNormalizer creates a normalizer. Without a resolver every message falls back
// to the error text.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		prefix:     DefaultErrorKeyPrefix,
		systemCode: DefaultSystemErrorCode,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize builds the error response for err. Domain errors keep their code,
// anything else gets the system code. The message is resolved for the code in
// locale and falls back to err's own text when no message is configured.
func (n *Normalizer) Normalize(err error, locale language.Tag) *model.ErrorResponse {
	if err == nil {
		return nil
	}

	code, ok := apperror.CodeOf(err)
	if !ok || code == model.CodeSuccess {
		code = n.systemCode
	}

	description := err.Error()
	return model.NewError(code, n.message(code, locale, description), description)
}

// SystemCode returns the code used for errors without a domain code.
func (n *Normalizer) SystemCode() int {
	return n.systemCode
}

// Key returns the message key of code.
func (n *Normalizer) Key(code int) string {
	return n.prefix + strconv.Itoa(code)
}

func (n *Normalizer) message(code int, locale language.Tag, fallback string) string {
	if n.resolver == nil {
		return fallback
	}
	text := n.resolver.Resolve(n.Key(code), locale)
	if text == "" || message.IsUnresolved(text) {
		return fallback
	}
	return text
}
