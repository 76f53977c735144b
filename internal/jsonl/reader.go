// SPDX-License-Identifier: MIT

package jsonl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when a line holds something other than a JSON
// object.
var ErrNotObject = errors.New("jsonl: value is not an object")

// Object is one decoded line with its keys in input order.
type Object struct {
	Keys   []string
	Values []any
}

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for i, k := range o.Keys {
		if k == key {
			return o.Values[i], true
		}
	}

	return nil, false
}

// ReadAll decodes every object of a JSON-lines stream.
func ReadAll(r io.Reader) ([]Object, error) {
	dec := json.NewDecoder(r)
	var out []Object
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("jsonl: object %d: %w", len(out), err)
		}
		obj, err := decodeObject(raw)
		if err != nil {
			return nil, fmt.Errorf("jsonl: object %d: %w", len(out), err)
		}
		out = append(out, obj)
	}
}

// decodeObject walks the top-level keys of raw in order.
func decodeObject(raw json.RawMessage) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return Object{}, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Object{}, ErrNotObject
	}

	var obj Object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Object{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Object{}, fmt.Errorf("unexpected key token %v", tok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return Object{}, fmt.Errorf("key %q: %w", key, err)
		}
		v, err := scalar(val)
		if err != nil {
			return Object{}, fmt.Errorf("key %q: %w", key, err)
		}
		obj.Keys = append(obj.Keys, key)
		obj.Values = append(obj.Values, v)
	}

	return obj, nil
}

// scalar converts a JSON value: numbers to int64 or float64, strings, bools
// and null as usual, anything nested stays raw.
func scalar(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	num, ok := v.(json.Number)
	if !ok {
		return v, nil
	}
	if i, err := num.Int64(); err == nil {
		return i, nil
	}

	return num.Float64()
}
