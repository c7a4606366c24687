package display

import (
	"bytes"
	"reflect"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/can/am"
	"github.com/teranos/can/errors"
)

// Marshal encodes v in one of the structured formats: json, yaml or toml.
//
// TOML documents must be tables, so a top-level slice is emitted under an
// "items" key.
func Marshal(format string, v interface{}) ([]byte, error) {
	switch format {
	case am.FormatJSON:
		return MarshalJSON(v)
	case am.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, errors.Wrap(err, "failed to marshal YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "failed to marshal YAML")
		}
		return buf.Bytes(), nil
	case am.FormatTOML:
		if k := reflect.ValueOf(v).Kind(); k == reflect.Slice || k == reflect.Array {
			v = map[string]interface{}{"items": v}
		}
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal TOML")
		}
		return data, nil
	default:
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("%q is not a structured format", format),
			"use json, yaml or toml")
	}
}
