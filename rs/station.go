// Package rs implements the four reservation-station pools (ADD/SUB,
// MUL/DIV, LOAD, STORE). A single shared slot structure covers all four
// pools since their fields overlap; pool identity is only used at dispatch
// and by callers that need to iterate a specific pool (spec.md §9).
package rs

import (
	"github.com/sarchlab/tomasim/inst"
	"github.com/sarchlab/tomasim/rob"
)

// Pool identifies which reservation-station pool a station belongs to.
type Pool int

const (
	// PoolAddSub holds ADD/SUB stations.
	PoolAddSub Pool = iota
	// PoolMulDiv holds MUL/DIV stations.
	PoolMulDiv
	// PoolLoad holds LOAD stations.
	PoolLoad
	// PoolStore holds STORE stations.
	PoolStore
)

func (p Pool) String() string {
	switch p {
	case PoolAddSub:
		return "ADD/SUB"
	case PoolMulDiv:
		return "MUL/DIV"
	case PoolLoad:
		return "LOAD"
	case PoolStore:
		return "STORE"
	default:
		return "?"
	}
}

// PoolFor returns which pool an op dispatches into.
func PoolFor(op inst.Op) Pool {
	switch op {
	case inst.ADD, inst.SUB:
		return PoolAddSub
	case inst.MUL, inst.DIV:
		return PoolMulDiv
	case inst.LOAD:
		return PoolLoad
	case inst.STORE:
		return PoolStore
	default:
		return PoolAddSub
	}
}

// Tag is an operand's producer: either resolved (Ready true, Value holds
// the operand) or pending on a ROB index (Ready false, Producer holds it).
// This is the Qj/Vj (or Qk/Vk) pair from spec.md §3, modeled as one value so
// "Qj empty" and "Vj holds the value" can't drift out of sync.
type Tag struct {
	Ready    bool
	Value    int
	Producer rob.Index
}

// ReadyTag returns an already-resolved operand tag.
func ReadyTag(value int) Tag { return Tag{Ready: true, Value: value} }

// PendingTag returns an operand tag waiting on a ROB index.
func PendingTag(producer rob.Index) Tag { return Tag{Ready: false, Producer: producer} }

// Station is one reservation-station slot.
type Station struct {
	Busy bool
	Op   inst.Op

	Vj Tag
	Vk Tag

	// A is the immediate offset for LOAD/STORE; unused for arithmetic ops.
	A int

	// Owner is the ROB index this station will broadcast its result to.
	Owner rob.Index
	// InstIdx is the program-order index of the instruction occupying this
	// station.
	InstIdx int

	// ReadyCycle is the cycle in which this station most recently became
	// fully ready to execute (both operands resolved), or NotReady if it
	// isn't ready yet. Execute-Start requires the current cycle to be
	// strictly later than ReadyCycle before dispatching: spec.md §5's
	// Issue-before-Execute-Start rule generalizes to any operand
	// resolution, including a same-cycle CDB broadcast waking a dependent
	// station (spec.md §4.1, §4.3).
	ReadyCycle int
}

// NotReady is the ReadyCycle sentinel for a station that is not yet fully
// ready to execute.
const NotReady = -1

// ReadyToExecute reports whether both operands are resolved, i.e. the
// station has moved from Busy-Waiting to Busy-Ready (spec.md §4.7).
func (s *Station) ReadyToExecute() bool {
	return s.Busy && s.Vj.Ready && s.Vk.Ready
}

// Clear resets a station to its free state. Called when the CDB frees the
// station that produced a result (spec.md §4.5 step 4).
func (s *Station) Clear() {
	*s = Station{ReadyCycle: NotReady}
}

// ReceiveBroadcast updates any operand tag of this station that was waiting
// on producer, resolving it to value. Returns whether anything changed, so
// callers can tell whether a STORE's own data (Vj) just became ready.
func (s *Station) ReceiveBroadcast(producer rob.Index, value int) (jUpdated, kUpdated bool) {
	if s.Busy && !s.Vj.Ready && s.Vj.Producer == producer {
		s.Vj = ReadyTag(value)
		jUpdated = true
	}
	if s.Busy && !s.Vk.Ready && s.Vk.Producer == producer {
		s.Vk = ReadyTag(value)
		kUpdated = true
	}
	return jUpdated, kUpdated
}
