// Package progress defines the fixed-schema progress record emitted by the
// search engines on every improvement, and the recorders that route the
// stream to its destination.
//
// Schema (Header):
//
//	turn,time,nb_uncolored,penalty,nb_colors,solution
//
// time is elapsed wall-clock seconds with millisecond precision; solution is
// the colon-separated color vector (Uncolored as -1).
//
// Recorders:
//
//	CSV     header + one line per record on an io.Writer, '#' metadata first
//	Klog    one leveled log line per record
//	Memory  keeps every record (tests, bench summaries)
//	Multi   fan-out
//	Discard drops everything
package progress
