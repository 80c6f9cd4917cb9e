package progress

import (
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/gcol/coloring"
)

// Header is the CSV header matching Record.Fields.
const Header = "turn,time," + coloring.HeaderCSV

// Record is one progress line.
type Record struct {
	Turn      int64
	Elapsed   time.Duration
	Uncolored int
	Penalty   int
	Colors    int
	Solution  string
}

// FromColoring snapshots the counters and encoding of c.
func FromColoring(turn int64, elapsed time.Duration, c *coloring.Coloring) Record {
	return Record{
		Turn:      turn,
		Elapsed:   elapsed,
		Uncolored: c.NumUncolored(),
		Penalty:   c.Penalty(),
		Colors:    c.NumColors(),
		Solution:  c.Encode(),
	}
}

// Seconds renders Elapsed in seconds with millisecond precision.
func (r Record) Seconds() string {
	return strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 3, 64)
}

// Fields returns the record in Header order.
func (r Record) Fields() []string {
	return []string{
		strconv.FormatInt(r.Turn, 10),
		r.Seconds(),
		strconv.Itoa(r.Uncolored),
		strconv.Itoa(r.Penalty),
		strconv.Itoa(r.Colors),
		r.Solution,
	}
}

// Line joins Fields with commas.
func (r Record) Line() string { return strings.Join(r.Fields(), ",") }
