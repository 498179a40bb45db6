package codec

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

type xmlCodec struct{}

// XML returns the XML codec.
func XML() Codec {
	return xmlCodec{}
}

func (xmlCodec) Format() Format {
	return FormatXML
}

func (xmlCodec) Encode(v any) (string, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: xml: %v", ErrSerialization, err)
	}
	return string(data), nil
}

func (xmlCodec) Decode(data string, v any) error {
	if err := checkTarget(FormatXML, v); err != nil {
		return err
	}

	dec := xml.NewDecoder(strings.NewReader(data))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &DecodeError{Format: FormatXML, Err: err}
	}

	// Reject trailing elements after the document root
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &DecodeError{Format: FormatXML, Err: err}
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				return &DecodeError{Format: FormatXML, Err: errors.New("unexpected data after root element")}
			}
		case xml.Comment, xml.ProcInst:
		default:
			return &DecodeError{Format: FormatXML, Err: errors.New("unexpected data after root element")}
		}
	}
}
