package progress

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/plan-systems/klog"
)

// Recorder consumes progress records. Implementations used from several
// trajectories at once must be safe for concurrent use.
type Recorder interface {
	Record(r Record) error
}

// Meta is one "# key: value" line written before the CSV header.
type Meta struct {
	Key   string
	Value string
}

// CSV writes records as CSV lines. It is safe for concurrent use.
type CSV struct {
	mu sync.Mutex
	w  *csv.Writer
}

// NewCSV writes the metadata lines and the header to w.
func NewCSV(w io.Writer, meta ...Meta) (*CSV, error) {
	for _, m := range meta {
		if _, err := fmt.Fprintf(w, "# %s: %s\n", m.Key, m.Value); err != nil {
			return nil, fmt.Errorf("NewCSV: %w", err)
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return nil, fmt.Errorf("NewCSV: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("NewCSV: %w", err)
	}
	return &CSV{w: cw}, nil
}

// Record writes one line and flushes it.
func (c *CSV) Record(r Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.w.Write(r.Fields()); err != nil {
		return fmt.Errorf("CSV.Record: %w", err)
	}
	c.w.Flush()
	return c.w.Error()
}

// Klog logs every record at verbosity Level under the given Tag.
type Klog struct {
	Tag   string
	Level klog.Level
}

// Record logs r; it never fails.
func (k Klog) Record(r Record) error {
	klog.V(k.Level).Infof("%s turn=%d t=%ss uncolored=%d penalty=%d colors=%d",
		k.Tag, r.Turn, r.Seconds(), r.Uncolored, r.Penalty, r.Colors)
	return nil
}

// Memory keeps every record in arrival order. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	records []Record
}

// Record appends r.
func (m *Memory) Record(r Record) error {
	m.mu.Lock()
	m.records = append(m.records, r)
	m.mu.Unlock()
	return nil
}

// Records returns a copy of the stored records.
func (m *Memory) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record(nil), m.records...)
}

// Multi forwards every record to each recorder and returns the first error.
type Multi []Recorder

// Record forwards r.
func (m Multi) Record(r Record) error {
	var first error
	for _, rec := range m {
		if err := rec.Record(r); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Discard drops every record.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Record) error { return nil }
