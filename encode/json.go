package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
)

// ToJSON marshals v to compact JSON.
func ToJSON[T any](v T) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("to json: %w", err)
	}
	return data, nil
}

// FromJSON unmarshals data into a fresh T. The type parameter keeps the
// interface{}-and-assert dance out of call sites.
func FromJSON[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("from json: %w", err)
	}
	return v, nil
}

// Pretty renders v as indented JSON for human eyes.
func Pretty(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("pretty json: %w", err)
	}
	return string(data), nil
}

// Dynamic decodes a JSON object without a struct, as nested maps and
// slices. Numbers arrive as float64; that is the library's contract, not
// a choice made here.
func Dynamic(data []byte) (map[string]any, error) {
	return FromJSON[map[string]any](data)
}

// Stream decodes back-to-back JSON values from r, yielding each in turn.
// The sequence is single-use. A decode error is yielded once and ends
// the stream, since the decoder's position is unreliable afterward.
func Stream[T any](r io.Reader) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		dec := json.NewDecoder(r)
		for dec.More() {
			var v T
			if err := dec.Decode(&v); err != nil {
				var zero T
				yield(zero, fmt.Errorf("decode stream: %w", err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
