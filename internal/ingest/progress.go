// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"fmt"
	"io"
	"time"
)

// Reporter receives non-essential progress feedback during a run. It exists
// so the pipeline never writes to the terminal directly.
type Reporter interface {
	// Progress is called periodically with the number of entries indexed
	// so far.
	Progress(indexed int)
	// Done is called once after the final flush.
	Done(total int, elapsed time.Duration)
}

// ConsoleReporter renders progress as a single overwritable status line,
// separate from the structured log stream.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter writes the status line to out (usually stdout, while
// logs go to stderr).
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Progress overwrites the status line in place.
func (r *ConsoleReporter) Progress(indexed int) {
	fmt.Fprintf(r.out, "\rIndexing %d titles...", indexed)
}

// Done replaces the status line with the final summary.
func (r *ConsoleReporter) Done(total int, elapsed time.Duration) {
	fmt.Fprintf(r.out, "\rIndexed all %d titles in %s. Have fun!\n", total, elapsed.Round(time.Millisecond))
}

// NopReporter discards all progress feedback.
type NopReporter struct{}

func (NopReporter) Progress(int)            {}
func (NopReporter) Done(int, time.Duration) {}
