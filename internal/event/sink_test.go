package event_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/crux/internal/event"
)

func TestTableSink(t *testing.T) {
	var buf bytes.Buffer
	sink := event.NewTableSink(&buf)

	sink.Record(event.Record{Bus: "bus-1", Event: "change", Payload: 42})

	out := buf.String()
	assert.Contains(t, out, "bus    bus-1")
	assert.Contains(t, out, "event  change")
	assert.Contains(t, out, "data   42")
}

func TestTableSinkWithLogger(t *testing.T) {
	var buf bytes.Buffer
	sink := event.NewTableSinkWithLogger(log.New(&buf, "diag: ", 0))

	sink.Record(event.Record{Bus: "bus-1", Event: "change", Payload: 42})

	assert.Equal(t, "diag: event\nbus    bus-1\nevent  change\ndata   42\n", buf.String())
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink := event.NewJSONSink(&buf)

	sink.Record(event.Record{
		Bus:     "bus-1",
		Event:   "change",
		Payload: map[string]any{"added": []string{"a", "b"}},
	})
	sink.Record(event.Record{Bus: "bus-1", Event: "empty"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	first := gjson.Parse(lines[0])
	assert.Equal(t, "bus-1", first.Get("bus").String())
	assert.Equal(t, "change", first.Get("event").String())
	assert.Equal(t, "b", first.Get("data.added.1").String())

	second := gjson.Parse(lines[1])
	assert.Equal(t, "empty", second.Get("event").String())
	assert.Equal(t, gjson.Null, second.Get("data").Type)
}

func TestJSONSink_UnmarshalablePayload(t *testing.T) {
	var buf bytes.Buffer
	sink := event.NewJSONSink(&buf)

	sink.Record(event.Record{Bus: "b", Event: "e", Payload: make(chan int)})

	doc := gjson.Parse(strings.TrimSpace(buf.String()))
	assert.True(t, doc.Get("data").Exists())
	assert.Equal(t, gjson.String, doc.Get("data").Type)
}

func TestBus_LogThroughJSONSink(t *testing.T) {
	var buf bytes.Buffer
	bus := event.New[string, string](
		event.WithCounters(event.NewCounters()),
		event.WithName("json"),
		event.WithSink(event.NewJSONSink(&buf)),
	)
	bus.OnFunc("ping", func(string) error { return nil }, event.WithLog())

	require.NoError(t, bus.Emit("ping", "pong"))

	doc := gjson.Parse(strings.TrimSpace(buf.String()))
	assert.Equal(t, "json", doc.Get("bus").String())
	assert.Equal(t, "pong", doc.Get("data").String())
}

func TestSinkFunc(t *testing.T) {
	var got []event.Record
	sink := event.SinkFunc(func(rec event.Record) {
		got = append(got, rec)
	})

	sink.Record(event.Record{Bus: "b", Event: "e"})
	assert.Len(t, got, 1)
}
