// Package rob implements the Reorder Buffer: a fixed-size circular queue of
// in-flight instructions that enforces in-order commit while allowing
// out-of-order execution upstream (spec.md §3-4).
package rob

import "github.com/sarchlab/tomasim/inst"

// Index is a slot number within the ROB. Reservation stations and the RAT
// carry Index values as "tags" identifying which in-flight instruction will
// produce a value — integer equality, not string comparison, is what the
// CDB broadcast matches on (spec.md §9).
type Index int

// State is a ROB entry's position in its lifecycle. There are no backward
// transitions (spec.md §4.7).
type State int

const (
	// Empty means the slot holds no instruction.
	Empty State = iota
	// Issue means the instruction has been dispatched but not yet executed.
	Issue
	// Execute means the instruction is in the execution tracker.
	Execute
	// WriteResult means the instruction's result has been broadcast on the
	// CDB and is ready to commit.
	WriteResult
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Issue:
		return "Issue"
	case Execute:
		return "Execute"
	case WriteResult:
		return "WriteResult"
	default:
		return "?"
	}
}

// Entry is one ROB slot. For STORE instructions DestReg is empty and
// Address holds the memory target; for every other op DestReg holds the
// architectural register. LOAD also records its effective address in
// Address; arithmetic ops leave it zero.
type Entry struct {
	Busy    bool
	InstIdx int
	Op      inst.Op
	State   State
	DestReg string
	Value   int
	Address int
	// ValueReady tracks data readiness independently of State reaching
	// WriteResult: a STORE can be in WriteResult (address computed) with
	// ValueReady still false, blocking commit until its data resolves
	// (spec.md §3, §4.6).
	ValueReady bool
}

// ROB is the fixed-size circular reorder buffer.
type ROB struct {
	entries   []Entry
	head      int
	tail      int
	available int
}

// New creates an empty ROB with the given number of slots.
func New(size int) *ROB {
	return &ROB{
		entries:   make([]Entry, size),
		available: size,
	}
}

// Size returns the total number of slots.
func (r *ROB) Size() int { return len(r.entries) }

// Available returns the number of free slots.
func (r *ROB) Available() int { return r.available }

// Empty reports whether every slot is free.
func (r *ROB) Empty() bool { return r.available == len(r.entries) }

// HasFreeSlot reports whether Allocate would succeed.
func (r *ROB) HasFreeSlot() bool { return r.available > 0 }

// Get returns the entry at idx.
func (r *ROB) Get(idx Index) Entry {
	return r.entries[idx]
}

// HeadIndex returns the index of the oldest (next to commit) slot.
func (r *ROB) HeadIndex() Index { return Index(r.head) }

// Allocate reserves the slot at tail for a newly issued instruction and
// returns its index. The caller must have checked HasFreeSlot first.
// destReg is the architectural register for non-STORE ops, or empty for
// STORE (spec.md §4.2 step 1).
func (r *ROB) Allocate(instIdx int, op inst.Op, destReg string) Index {
	idx := Index(r.tail)
	r.entries[idx] = Entry{
		Busy:    true,
		InstIdx: instIdx,
		Op:      op,
		State:   Issue,
		DestReg: destReg,
	}
	r.tail = (r.tail + 1) % len(r.entries)
	r.available--
	return idx
}

// SetExecuting transitions idx from Issue to Execute. A no-op if the entry
// is not currently in Issue state, matching the state machine's "only if
// currently Issue" guard (spec.md §4.3).
func (r *ROB) SetExecuting(idx Index) {
	if r.entries[idx].State == Issue {
		r.entries[idx].State = Execute
	}
}

// PublishResult records a broadcast value/address for idx and moves it to
// WriteResult. valueReady is false only for a STORE whose data has not yet
// resolved (spec.md §4.5 step 1).
func (r *ROB) PublishResult(idx Index, value, address int, valueReady bool) {
	e := &r.entries[idx]
	e.Value = value
	e.Address = address
	e.ValueReady = valueReady
	e.State = WriteResult
}

// MarkValueReady sets ValueReady without disturbing the rest of the entry.
// Used when a STORE's data resolves after its address was already written
// (spec.md §4.5 step 3) or when Issue captures already-ready STORE data
// (spec.md §4.2's STORE specifics).
func (r *ROB) MarkValueReady(idx Index, value int) {
	e := &r.entries[idx]
	e.Value = value
	e.ValueReady = true
}

// CanCommit reports whether the head of the ROB is eligible to commit per
// spec.md §4.6: busy, in WriteResult state, and — for STORE — with its data
// resolved.
func (r *ROB) CanCommit() bool {
	if r.Empty() {
		return false
	}
	head := r.entries[r.head]
	if !head.Busy || head.State != WriteResult {
		return false
	}
	if head.Op == inst.STORE && !head.ValueReady {
		return false
	}
	return true
}

// CommitHead frees the head slot and returns its entry. The caller must
// have checked CanCommit first.
func (r *ROB) CommitHead() Entry {
	e := r.entries[r.head]
	r.entries[r.head] = Entry{}
	r.head = (r.head + 1) % len(r.entries)
	r.available++
	return e
}

// All returns every slot in physical order, for the status printer.
func (r *ROB) All() []Entry {
	return r.entries
}
