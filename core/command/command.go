package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/apicore/core/codec"
)

// Operation is the kind of action a command performs.
type Operation int

const (
	OpCreate Operation = iota + 1
	OpGet
	OpModify
	OpDelete
)

// String returns the lowercase operation name.
func (o Operation) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpGet:
		return "get"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// IsValid reports whether o is one of the defined operations.
func (o Operation) IsValid() bool {
	return o >= OpCreate && o <= OpDelete
}

// ParseOperation maps an HTTP-style verb to an operation, case-insensitively.
func ParseOperation(verb string) (Operation, error) {
	switch strings.ToUpper(strings.TrimSpace(verb)) {
	case "POST":
		return OpCreate, nil
	case "GET":
		return OpGet, nil
	case "PUT":
		return OpModify, nil
	case "DELETE":
		return OpDelete, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperation, verb)
	}
}

// Command is one inbound request and, after dispatch, its response.
// A command is owned by a single dispatch call and must not be shared across goroutines.
type Command struct {
	ID        string    // Command identifier, e.g. "Ping"
	Version   string    // Handler version, e.g. "v1"
	Operation Operation // Action requested of the handler

	// ContextIDs holds identifiers taken from the path or query, e.g. {"id": 100}.
	ContextIDs map[string]any

	RequestFormat  codec.Format // Zero means JSON
	ResponseFormat codec.Format // Zero means JSON

	RawRequestBody  mo.Option[string] // Absent means nothing to decode
	RequestModel    any               // May be pre-populated from the query string
	ResponseModel   any               // Set by the handler or the error path
	RawResponseBody string            // Serialized ResponseModel

	Locale        language.Tag // Locale for error messages
	CorrelationID string
	CreatedAt     time.Time
}

// NewCommand creates a command with a generated correlation ID.
//
// Example:
//
//	cmd := command.NewCommand("Order", "v1", command.OpGet)
//	cmd.ContextIDs["id"] = 100
//	cmd.RequestModel = model.ParseQuery(r.URL.Query())
func NewCommand(id, version string, op Operation) *Command {
	return &Command{
		ID:            id,
		Version:       version,
		Operation:     op,
		ContextIDs:    make(map[string]any),
		CorrelationID: uuid.New().String(),
		CreatedAt:     time.Now(),
	}
}

// WithBody sets the raw request body and returns the command.
func (c *Command) WithBody(body string) *Command {
	c.RawRequestBody = mo.Some(body)
	return c
}

// WithFormats sets the request and response formats and returns the command.
func (c *Command) WithFormats(request, response codec.Format) *Command {
	c.RequestFormat = request
	c.ResponseFormat = response
	return c
}

// WithLocale sets the locale and returns the command.
func (c *Command) WithLocale(tag language.Tag) *Command {
	c.Locale = tag
	return c
}

// ContextID returns the context identifier stored under key.
func (c *Command) ContextID(key string) (any, bool) {
	if c.ContextIDs == nil {
		return nil, false
	}
	v, ok := c.ContextIDs[key]
	return v, ok
}

// HasBody reports whether the command carries a raw request body.
func (c *Command) HasBody() bool {
	return c.RawRequestBody.IsPresent()
}

func (c *Command) applyFormatDefaults(def codec.Format) {
	c.RequestFormat = c.RequestFormat.OrDefault(def)
	c.ResponseFormat = c.ResponseFormat.OrDefault(def)
}
