package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode coerces wire with FromWire and decodes the result into a T using
// the json tag names. Embedded structs are squashed so models.ContentMeta
// fields are read from the top level.
func Decode[T any](s *Schema, wire map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Squash:  true,
		Result:  &out,
	})
	if err != nil {
		return out, fmt.Errorf("build %s decoder: %w", s.Entity, err)
	}
	if err := dec.Decode(s.FromWire(wire)); err != nil {
		return out, fmt.Errorf("decode %s: %w", s.Entity, err)
	}
	return out, nil
}

// Encode turns a draft struct (or a map) into a wire payload.
func Encode(s *Schema, draft any, mode Mode) (map[string]any, error) {
	in, err := ToMap(draft)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.Entity, err)
	}
	return s.ToWire(in, mode), nil
}

// ToMap flattens v through its JSON form. Maps are returned as is.
func ToMap(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
