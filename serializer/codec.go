package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"gopkg.in/yaml.v3"
	"io"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrTrailingData = errors.New("unexpected data after decoded value")

// Codec encodes and decodes values for one format.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, target any) error
}

// CodecFuncs adapts a pair of functions to the [Codec] interface.
type CodecFuncs struct {
	MarshalFunc   func(v any) ([]byte, error)
	UnmarshalFunc func(data []byte, target any) error
}

func (c CodecFuncs) Marshal(v any) ([]byte, error) {
	return c.MarshalFunc(v)
}

func (c CodecFuncs) Unmarshal(data []byte, target any) error {
	return c.UnmarshalFunc(data, target)
}

// JSONCodec encodes values as JSON.
// Decoding rejects unknown fields, and anything other than whitespace after the first value.
var JSONCodec Codec = CodecFuncs{
	MarshalFunc: json.Marshal,
	UnmarshalFunc: func(data []byte, target any) error {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(target); err != nil {
			return err
		}
		if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
			return ErrTrailingData
		}
		return nil
	},
}

// YAMLCodec encodes values as YAML.
var YAMLCodec Codec = CodecFuncs{
	MarshalFunc:   yaml.Marshal,
	UnmarshalFunc: yaml.Unmarshal,
}
