// Package diag collects the diagnostic messages spec.md §7 requires for its
// three error classes (parse, runtime arithmetic/memory, internal
// inconsistency). It stays a small, inspectable record-keeper rather than a
// structured-logging dependency: see DESIGN.md for why.
package diag

import (
	"fmt"
	"io"
)

// Severity classifies a diagnostic entry per spec.md §7.
type Severity int

const (
	// Parse marks a skipped, malformed instruction line.
	Parse Severity = iota
	// Runtime marks a substituted-default arithmetic or memory fault
	// (divide-by-zero, out-of-range access).
	Runtime
	// Internal marks an inconsistency the pipeline recovered from by
	// skipping the affected step (e.g. a write-back that can't find its
	// owning reservation station).
	Internal
)

func (s Severity) String() string {
	switch s {
	case Parse:
		return "PARSE"
	case Runtime:
		return "RUNTIME"
	case Internal:
		return "INTERNAL"
	default:
		return "?"
	}
}

// Entry is one recorded diagnostic. Cycle is the simulated cycle the event
// occurred in, or -1 for diagnostics raised before simulation starts (e.g.
// parse errors, which precede cycle 0).
type Entry struct {
	Cycle    int
	Severity Severity
	Message  string
}

func (e Entry) String() string {
	if e.Cycle < 0 {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] cycle %d: %s", e.Severity, e.Cycle, e.Message)
}

// Log accumulates diagnostic entries for later inspection, by the driver's
// stderr printer or by tests asserting on what was logged.
type Log struct {
	entries []Entry
}

// New creates an empty diagnostic log.
func New() *Log {
	return &Log{}
}

// Record appends a diagnostic entry.
func (l *Log) Record(cycle int, sev Severity, format string, args ...any) {
	l.entries = append(l.entries, Entry{
		Cycle:    cycle,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Entries returns every recorded diagnostic, in recording order.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Len reports how many diagnostics have been recorded.
func (l *Log) Len() int {
	return len(l.entries)
}

// WriteTo prints every entry to w, one per line, the same plain-text shape
// the driver writes to os.Stderr.
func (l *Log) WriteTo(w io.Writer) {
	for _, e := range l.entries {
		fmt.Fprintln(w, e.String())
	}
}
