package event

//go:generate mockgen -destination=mock/mock_sink.go -package=mockevent -source=sink.go

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"text/tabwriter"

	"github.com/tidwall/sjson"
)

// Record is one diagnostic entry for a logged listener invocation.
type Record struct {
	Bus     string
	Event   string
	Payload any
}

// Sink receives diagnostic records.
type Sink interface {
	Record(rec Record)
}

// SinkFunc is a function adapter for Sink.
type SinkFunc func(rec Record)

// Record implements the Sink interface.
func (f SinkFunc) Record(rec Record) {
	f(rec)
}

// TableSink prints records as an aligned key/value table.
type TableSink struct {
	logger *log.Logger
}

// NewTableSink creates a table sink writing to w.
func NewTableSink(w io.Writer) *TableSink {
	return NewTableSinkWithLogger(log.New(w, "", log.LstdFlags))
}

// NewTableSinkWithLogger creates a table sink on an existing logger.
func NewTableSinkWithLogger(logger *log.Logger) *TableSink {
	return &TableSink{logger: logger}
}

// Record implements the Sink interface.
func (s *TableSink) Record(rec Record) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "bus\t%s\n", rec.Bus)
	fmt.Fprintf(tw, "event\t%s\n", rec.Event)
	fmt.Fprintf(tw, "data\t%+v\n", rec.Payload)
	_ = tw.Flush()

	s.logger.Print("event\n" + buf.String())
}

// JSONSink writes one JSON object per record.
type JSONSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONSink creates a JSON sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

// Record implements the Sink interface.
// Payloads that cannot be marshaled are written as their fmt representation.
func (s *JSONSink) Record(rec Record) {
	doc, _ := sjson.Set("", "bus", rec.Bus)
	doc, _ = sjson.Set(doc, "event", rec.Event)

	out, err := sjson.Set(doc, "data", rec.Payload)
	if err != nil {
		out, _ = sjson.Set(doc, "data", fmt.Sprintf("%+v", rec.Payload))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, out+"\n")
}
