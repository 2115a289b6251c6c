// Package encode collects data encoding recipes: CSV and its
// tab-separated cousin, JSON, and the neighboring YAML and TOML formats.
//
// Nothing here parses anything itself. Each helper is a thin, typed shape
// over the corresponding library (encoding/csv, encoding/json, yaml.v3,
// BurntSushi/toml), because the mistakes worth a recipe are almost never
// in the parsing — they are in the plumbing around it: forgetting that a
// CSV needs its header split from its rows, hand-rolling string splitting
// that breaks on quoted commas, or decoding JSON into interface soup when
// a struct was wanted.
//
// # Tabular data
//
// ReadTable loads a whole CSV with its header; Records streams rows one
// at a time as header-keyed maps, for files too big to hold. DecodeRows
// converts rows into real types and keeps going past bad rows, returning
// every conversion failure at once rather than the first.
//
// # JSON
//
// ToJSON, FromJSON and Pretty cover the marshal round trip; Dynamic
// decodes into a map when no struct exists yet; Stream walks a decoder
// over back-to-back values. Marshaling a value JSON has no encoding for
// (a channel, a func) fails with *json.UnsupportedTypeError — see the
// tests for the transcript.
package encode
