// Package exec holds the two pieces of state that live between a
// reservation station becoming ready and its result reaching the ROB: the
// execution tracker (in-flight operations counting down cycles) and the
// single-writer CDB queue (spec.md §2, §4.3-4.5).
package exec

import "github.com/sarchlab/tomasim/rs"

// Record describes one in-flight execution.
type Record struct {
	Pool            rs.Pool
	StationIdx      int
	InstIdx         int
	RemainingCycles int
}

// Tracker holds every currently-executing operation. Order of insertion is
// preserved but is not itself meaningful; what matters is that each RS
// occupies at most one record (spec.md §4.3's "not already in the execution
// tracker" guard).
type Tracker struct {
	records []Record
}

// NewTracker creates an empty execution tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Contains reports whether (pool, stationIdx) already has an in-flight
// record.
func (t *Tracker) Contains(pool rs.Pool, stationIdx int) bool {
	for _, r := range t.records {
		if r.Pool == pool && r.StationIdx == stationIdx {
			return true
		}
	}
	return false
}

// Start begins tracking a new execution.
func (t *Tracker) Start(pool rs.Pool, stationIdx, instIdx, latency int) {
	t.records = append(t.records, Record{
		Pool:            pool,
		StationIdx:      stationIdx,
		InstIdx:         instIdx,
		RemainingCycles: latency,
	})
}

// Advance decrements every record's remaining-cycle count by one and
// returns the instruction indices (with their originating pool/station)
// that finished this cycle, removing them from the tracker. Spec.md §4.4.
func (t *Tracker) Advance() []Record {
	var finished []Record
	remaining := t.records[:0]
	for _, r := range t.records {
		r.RemainingCycles--
		if r.RemainingCycles <= 0 {
			finished = append(finished, r)
		} else {
			remaining = append(remaining, r)
		}
	}
	t.records = remaining
	return finished
}

// Len reports how many operations are currently in flight.
func (t *Tracker) Len() int {
	return len(t.records)
}
