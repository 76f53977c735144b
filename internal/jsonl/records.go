// SPDX-License-Identifier: MIT

package jsonl

import (
	"fmt"

	"github.com/katalvlaran/surus/rad"
)

// Records builds a schema from the union of keys (first-appearance order)
// and lays every object out against it. Missing keys become nil. A field
// whose non-null values are all int64 is Long; one mixing int64 and float64
// is Double and its int64 values are converted.
func Records(objs []Object) (rad.Schema, []rad.Record) {
	index := map[string]int{}
	var schema rad.Schema
	for _, o := range objs {
		for _, k := range o.Keys {
			if _, ok := index[k]; !ok {
				index[k] = len(schema)
				schema = append(schema, rad.Field{Name: k})
			}
		}
	}

	records := make([]rad.Record, len(objs))
	kinds := make([]map[rad.Kind]bool, len(schema))
	for i := range kinds {
		kinds[i] = map[rad.Kind]bool{}
	}
	for n, o := range objs {
		rec := make(rad.Record, len(schema))
		for i, k := range o.Keys {
			pos := index[k]
			rec[pos] = o.Values[i]
			if o.Values[i] != nil {
				kinds[pos][rad.KindOf(o.Values[i])] = true
			}
		}
		records[n] = rec
	}

	for pos := range schema {
		schema[pos].Kind = resolveKind(kinds[pos])
		if schema[pos].Kind != rad.Double || !kinds[pos][rad.Long] {
			continue
		}
		for _, rec := range records {
			if v, ok := rec[pos].(int64); ok {
				rec[pos] = float64(v)
			}
		}
	}

	return schema, records
}

func resolveKind(seen map[rad.Kind]bool) rad.Kind {
	switch {
	case len(seen) == 1:
		for k := range seen {
			return k
		}
	case len(seen) == 2 && seen[rad.Long] && seen[rad.Double]:
		return rad.Double
	}

	return rad.Unknown
}

// Chunk splits records into consecutive windows of size records each.
func Chunk(records []rad.Record, size int) ([][]rad.Record, error) {
	if size <= 0 {
		return nil, fmt.Errorf("jsonl: window size %d", size)
	}
	if len(records)%size != 0 {
		return nil, fmt.Errorf("jsonl: %d records do not fill windows of %d", len(records), size)
	}
	out := make([][]rad.Record, 0, len(records)/size)
	for start := 0; start < len(records); start += size {
		out = append(out, records[start:start+size:start+size])
	}

	return out, nil
}

// GroupBy splits records by the value of field, keeping groups in order of
// first appearance and records in input order within a group.
func GroupBy(schema rad.Schema, records []rad.Record, field string) ([][]rad.Record, error) {
	pos := schema.Index(field)
	if pos < 0 {
		return nil, fmt.Errorf("jsonl: group-by field %q not found", field)
	}
	index := map[string]int{}
	var out [][]rad.Record
	for _, rec := range records {
		key := fmt.Sprintf("%T:%v", rec[pos], rec[pos])
		g, ok := index[key]
		if !ok {
			g = len(out)
			index[key] = g
			out = append(out, nil)
		}
		out[g] = append(out[g], rec)
	}

	return out, nil
}
