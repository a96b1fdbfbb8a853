// Package codec provides prisms between encoded documents and typed values.
//
// GetOrModify decodes and reports undecodable input as Left(original).
// ReverseGet encodes. The prism laws hold on canonical documents, that is
// documents the same codec produced; reformatted input still decodes but
// re-encodes to its canonical form.
//
// Documents that carry no value are the sharpest case: JSON `null` and an
// empty YAML document decode to the zero T as Right, and ReverseGet of that
// zero T yields a full document such as {"name":"","port":0}, not the input.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/functional"
)

// Format names an encoding.
type Format string

// Supported formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

type codec struct {
	format    Format
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var codecs = map[Format]codec{
	FormatJSON:    {format: FormatJSON, marshal: json.Marshal, unmarshal: json.Unmarshal},
	FormatYAML:    {format: FormatYAML, marshal: yaml.Marshal, unmarshal: yaml.Unmarshal},
	FormatTOML:    {format: FormatTOML, marshal: tomlMarshal, unmarshal: tomlUnmarshal},
	FormatMsgpack: {format: FormatMsgpack, marshal: msgpack.Marshal, unmarshal: msgpack.Unmarshal},
}

// JSON decodes and encodes T with encoding/json.
func JSON[T any]() optics.Prism[[]byte, T] { return prism[T](codecs[FormatJSON]) }

// YAML decodes and encodes T with gopkg.in/yaml.v3.
func YAML[T any]() optics.Prism[[]byte, T] { return prism[T](codecs[FormatYAML]) }

// TOML decodes and encodes T with github.com/BurntSushi/toml. T must be a
// struct or map type, as TOML documents are tables.
func TOML[T any]() optics.Prism[[]byte, T] { return prism[T](codecs[FormatTOML]) }

// Msgpack decodes and encodes T with MessagePack.
func Msgpack[T any]() optics.Prism[[]byte, T] { return prism[T](codecs[FormatMsgpack]) }

// For returns the prism for format.
func For[T any](format Format) (optics.Prism[[]byte, T], error) {
	c, ok := codecs[format]
	if !ok {
		return optics.Prism[[]byte, T]{}, fmt.Errorf("codec: unknown format %q", format)
	}
	return prism[T](c), nil
}

// Decode decodes data as T in format and returns the decoding error that
// the prism reports only as Left.
func Decode[T any](format Format, data []byte) (T, error) {
	var v T
	c, ok := codecs[format]
	if !ok {
		return v, fmt.Errorf("codec: unknown format %q", format)
	}
	if err := c.unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("codec: decode %s: %w", format, err)
	}
	return v, nil
}

// Encode encodes v in format.
func Encode[T any](format Format, v T) ([]byte, error) {
	c, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("codec: unknown format %q", format)
	}
	data, err := c.marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode %s: %w", format, err)
	}
	return data, nil
}

// Transcode is the iso-like path between two formats for the same T:
// decode with from, encode with to. Undecodable input is returned as is.
func Transcode[T any](from, to Format) (func([]byte) []byte, error) {
	src, err := For[T](from)
	if err != nil {
		return nil, err
	}
	dst, err := For[T](to)
	if err != nil {
		return nil, err
	}
	return func(data []byte) []byte {
		return functional.MatchEither(src.GetOrModify(data),
			functional.IdentityFunc[[]byte],
			dst.ReverseGet,
		)
	}, nil
}

func prism[T any](c codec) optics.Prism[[]byte, T] {
	return optics.NewPrism(
		func(data []byte) functional.Either[[]byte, T] {
			var v T
			if err := c.unmarshal(data, &v); err != nil {
				return functional.Left[[]byte, T](data)
			}
			return functional.Right[[]byte](v)
		},
		func(v T) []byte {
			data, err := c.marshal(v)
			if err != nil {
				panic(fmt.Sprintf("codec: encode %s: %v", c.format, err))
			}
			return data
		},
	)
}

func tomlMarshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func tomlUnmarshal(data []byte, v any) error {
	_, err := toml.Decode(string(data), v)
	return err
}
