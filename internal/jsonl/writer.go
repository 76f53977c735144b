// SPDX-License-Identifier: MIT

package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/surus/rad"
)

// Writer emits records as JSON lines with keys in schema order.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w; call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write encodes each record against schema. A record shorter than schema
// (a skipped window) only emits its own fields.
func (jw *Writer) Write(schema rad.Schema, records []rad.Record) error {
	for n, rec := range records {
		if len(rec) > len(schema) {
			return fmt.Errorf("jsonl: record %d has %d fields, schema %d", n, len(rec), len(schema))
		}
		if err := jw.w.WriteByte('{'); err != nil {
			return err
		}
		for i, v := range rec {
			if i > 0 {
				if err := jw.w.WriteByte(','); err != nil {
					return err
				}
			}
			key, err := json.Marshal(schema[i].Name)
			if err != nil {
				return err
			}
			val, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("jsonl: record %d field %q: %w", n, schema[i].Name, err)
			}
			if _, err := jw.w.Write(key); err != nil {
				return err
			}
			if err := jw.w.WriteByte(':'); err != nil {
				return err
			}
			if _, err := jw.w.Write(val); err != nil {
				return err
			}
		}
		if _, err := jw.w.WriteString("}\n"); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes any buffered data.
func (jw *Writer) Flush() error {
	return jw.w.Flush()
}
