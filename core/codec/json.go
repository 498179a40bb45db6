package codec

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type jsonCodec struct{}

// JSON returns the JSON codec.
func JSON() Codec {
	return jsonCodec{}
}

func (jsonCodec) Format() Format {
	return FormatJSON
}

func (jsonCodec) Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: json: %v", ErrSerialization, err)
	}
	return string(data), nil
}

func (jsonCodec) Decode(data string, v any) error {
	if err := checkTarget(FormatJSON, v); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return &DecodeError{Format: FormatJSON, Err: err}
	}
	return nil
}
