// Package codec converts between wire-format strings and typed models.
//
// Two codecs ship with the package: JSON (backed by goccy/go-json) and XML (backed by
// encoding/xml). A codec is always chosen by the Format carried on a command, never by
// inspecting the payload.
//
// # Formats
//
// Format names a wire format. ParseFormat accepts short names and media types,
// case-insensitive and with optional parameters:
//
//	codec.ParseFormat("json")                            // FormatJSON
//	codec.ParseFormat("application/json; charset=utf-8") // FormatJSON
//	codec.ParseFormat("text/xml")                        // FormatXML
//	codec.ParseFormat("yaml")                            // error matching ErrUnsupportedFormat
//
// An unset Format is the zero value; OrDefault substitutes a fallback and
// ContentType returns the media type to send back to the client:
//
//	f := cmd.ResponseFormat.OrDefault(codec.DefaultFormat)
//	w.Header().Set("Content-Type", f.ContentType())
//
// # Encoding and Decoding
//
// Codecs work on strings, matching the raw bodies carried by commands:
//
//	c, err := codec.DefaultSet().Lookup(codec.FormatXML)
//	if err != nil {
//		return err
//	}
//	raw, err := c.Encode(resp)
//
// Decoding into a fresh value of a known type:
//
//	req, err := codec.Decode[PingRequest](codec.JSON(), `{"message":"hi"}`)
//	if errors.Is(err, codec.ErrDeserialization) {
//		// malformed payload or type mismatch
//	}
//
// Decode targets must be non-nil pointers. JSON and XML payloads must hold exactly one
// document; trailing data after it is a decode error.
//
// # Codec Sets
//
// A Set is an immutable table of codecs keyed by format. DefaultSet holds JSON and XML;
// NewSet builds custom tables, and a later codec replaces an earlier one for the same
// format:
//
//	set := codec.NewSet(codec.JSON(), myMsgpackCodec{})
//	set.Formats() // sorted list of registered formats
//
// Lookup of a format with no codec fails with ErrUnsupportedFormat.
//
// # Field Naming
//
// Both codecs honor struct tags, so models tag each wire field with the same json and
// xml name and mark wire-transient fields with `json:"-" xml:"-"`. The result is an
// identical field set for a given type in either format. XML documents use the Go type
// name as their root element unless the model declares an XMLName field.
//
// Decimal values should use shopspring/decimal, which encodes without trailing zero
// padding (12.50 becomes "12.5"). time.Time values encode as RFC 3339 with an explicit
// offset in both formats.
//
// # Error Handling
//
//   - ErrDeserialization: every decode failure, wrapped in a *DecodeError naming the
//     format and carrying the parser error.
//   - ErrInvalidTarget: the decode target is not a non-nil pointer.
//   - ErrSerialization: the model cannot be encoded.
//   - ErrUnsupportedFormat: unknown format name or no codec registered for it.
package codec
