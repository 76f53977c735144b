// SPDX-License-Identifier: MIT
package jsonl_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surus/internal/jsonl"
	"github.com/katalvlaran/surus/rad"
)

const sample = `{"ts":"d1","host":"a","hits":3,"tags":["x"]}
{"ts":"d2","host":"b","hits":4.5}
{"host":"a","ts":"d3","hits":5,"ok":true}
`

func TestReadAll_KeepsKeyOrderAndTypes(t *testing.T) {
	objs, err := jsonl.ReadAll(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, objs, 3)

	assert.Equal(t, []string{"ts", "host", "hits", "tags"}, objs[0].Keys)
	assert.Equal(t, []string{"host", "ts", "hits", "ok"}, objs[2].Keys)

	hits, ok := objs[0].Get("hits")
	require.True(t, ok)
	assert.Equal(t, int64(3), hits)
	hits, _ = objs[1].Get("hits")
	assert.Equal(t, 4.5, hits)
	flag, _ := objs[2].Get("ok")
	assert.Equal(t, true, flag)
	tags, _ := objs[0].Get("tags")
	assert.JSONEq(t, `["x"]`, string(tags.(json.RawMessage)))

	_, ok = objs[1].Get("missing")
	assert.False(t, ok)
}

func TestReadAll_Errors(t *testing.T) {
	_, err := jsonl.ReadAll(strings.NewReader("{\"a\":1}\n[1,2]\n"))
	assert.ErrorIs(t, err, jsonl.ErrNotObject)

	_, err = jsonl.ReadAll(strings.NewReader(`{"a":`))
	assert.Error(t, err)

	objs, err := jsonl.ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, objs)
}

func TestRecords_SchemaInference(t *testing.T) {
	objs, err := jsonl.ReadAll(strings.NewReader(sample))
	require.NoError(t, err)
	schema, records := jsonl.Records(objs)

	assert.Equal(t, rad.Schema{
		{Name: "ts", Kind: rad.Chararray},
		{Name: "host", Kind: rad.Chararray},
		{Name: "hits", Kind: rad.Double},
		{Name: "tags", Kind: rad.Unknown},
		{Name: "ok", Kind: rad.Boolean},
	}, schema)

	// Integers promoted alongside 4.5; values land in schema positions.
	assert.Equal(t, rad.Record{"d1", "a", 3.0, json.RawMessage(`["x"]`), nil}, records[0])
	assert.Equal(t, rad.Record{"d2", "b", 4.5, nil, nil}, records[1])
	assert.Equal(t, rad.Record{"d3", "a", 5.0, nil, true}, records[2])
}

func TestRecords_IntegerColumnStaysLong(t *testing.T) {
	objs, err := jsonl.ReadAll(strings.NewReader("{\"v\":1}\n{\"v\":2}\n"))
	require.NoError(t, err)
	schema, records := jsonl.Records(objs)
	assert.Equal(t, rad.Long, schema[0].Kind)
	assert.Equal(t, int64(2), records[1][0])
}

func TestChunk(t *testing.T) {
	records := make([]rad.Record, 6)
	for n := range records {
		records[n] = rad.Record{int64(n)}
	}
	windows, err := jsonl.Chunk(records, 3)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, int64(3), windows[1][0][0])

	_, err = jsonl.Chunk(records, 4)
	assert.Error(t, err)
	_, err = jsonl.Chunk(records, 0)
	assert.Error(t, err)
}

func TestGroupBy(t *testing.T) {
	objs, err := jsonl.ReadAll(strings.NewReader(sample))
	require.NoError(t, err)
	schema, records := jsonl.Records(objs)

	groups, err := jsonl.GroupBy(schema, records, "host")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []rad.Record{records[0], records[2]}, groups[0])
	assert.Equal(t, []rad.Record{records[1]}, groups[1])

	_, err = jsonl.GroupBy(schema, records, "nope")
	assert.Error(t, err)
}

func TestWriter_RoundTrip(t *testing.T) {
	in := "{\"ts\":\"d1\",\"v\":1.5}\n{\"ts\":\"d2\",\"v\":-2}\n"
	objs, err := jsonl.ReadAll(strings.NewReader(in))
	require.NoError(t, err)
	schema, records := jsonl.Records(objs)

	var buf bytes.Buffer
	w := jsonl.NewWriter(&buf)
	require.NoError(t, w.Write(schema, records))
	require.NoError(t, w.Flush())
	assert.Equal(t, "{\"ts\":\"d1\",\"v\":1.5}\n{\"ts\":\"d2\",\"v\":-2}\n", buf.String())

	back, err := jsonl.ReadAll(&buf)
	require.NoError(t, err)
	for n := range objs {
		assert.Equal(t, objs[n].Keys, back[n].Keys)
	}
}

func TestWriter_ShortAndLongRecords(t *testing.T) {
	schema := rad.Schema{{Name: "v", Kind: rad.Double}, {Name: rad.FieldTransform, Kind: rad.Double}}

	var buf bytes.Buffer
	w := jsonl.NewWriter(&buf)
	require.NoError(t, w.Write(schema, []rad.Record{{1.0}, {2.0, 0.5}}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "{\"v\":1}\n{\"v\":2,\"x_transform\":0.5}\n", buf.String())

	assert.Error(t, w.Write(schema, []rad.Record{{1.0, 2.0, 3.0}}))
}
