package rs

import "github.com/sarchlab/tomasim/rob"

// Sizes configures how many stations each pool has. The defaults match
// spec.md §8's concrete scenarios: 3 ADD/SUB, 2 MUL/DIV, 3 LOAD, 3 STORE.
type Sizes struct {
	AddSub int
	MulDiv int
	Load   int
	Store  int
}

// DefaultSizes returns the spec's default station counts.
func DefaultSizes() Sizes {
	return Sizes{AddSub: 3, MulDiv: 2, Load: 3, Store: 3}
}

// Banks holds all four reservation-station pools and supports the uniform,
// fixed-order iteration spec.md §9 calls out as necessary for determinism.
type Banks struct {
	pools map[Pool][]Station
}

// NewBanks allocates every pool at the given sizes.
func NewBanks(sizes Sizes) *Banks {
	return &Banks{
		pools: map[Pool][]Station{
			PoolAddSub: make([]Station, sizes.AddSub),
			PoolMulDiv: make([]Station, sizes.MulDiv),
			PoolLoad:   make([]Station, sizes.Load),
			PoolStore:  make([]Station, sizes.Store),
		},
	}
}

// poolOrder is the fixed iteration order used everywhere pools are walked
// uniformly (Execute-Start, Write-Result broadcast, the status printer).
var poolOrder = []Pool{PoolAddSub, PoolMulDiv, PoolLoad, PoolStore}

// PoolOrder returns the fixed, deterministic pool iteration order.
func PoolOrder() []Pool { return poolOrder }

// Stations returns the slice backing a pool, for read access and iteration.
func (b *Banks) Stations(p Pool) []Station {
	return b.pools[p]
}

// FindFree returns the index of a free station in pool p, or -1 if none.
// Pools are scanned lowest index first, giving deterministic allocation.
func (b *Banks) FindFree(p Pool) int {
	for i := range b.pools[p] {
		if !b.pools[p][i].Busy {
			return i
		}
	}
	return -1
}

// Set replaces the station at (p, idx).
func (b *Banks) Set(p Pool, idx int, s Station) {
	b.pools[p][idx] = s
}

// Get returns a pointer to the station at (p, idx) for in-place mutation.
func (b *Banks) Get(p Pool, idx int) *Station {
	return &b.pools[p][idx]
}

// FindByOwner searches every pool for the busy station whose Owner is the
// given ROB index, returning its pool and slot index. ok is false if no such
// station exists. The pipeline's Write-Result stage does not call this; it
// uses FindByInstIdx.
func (b *Banks) FindByOwner(owner rob.Index) (p Pool, idx int, ok bool) {
	for _, pool := range poolOrder {
		for i := range b.pools[pool] {
			s := &b.pools[pool][i]
			if s.Busy && s.Owner == owner {
				return pool, i, true
			}
		}
	}
	return 0, 0, false
}

// FindByInstIdx searches every pool for the busy station executing the
// given program-order instruction index. Used by Write-Result to recover
// the station whose operands feed the computation, keyed by instruction
// index because that is what the CDB queue holds (spec.md §4.5). ok is false
// if no such station exists, which spec.md §4.8 treats as an
// internal-inconsistency error to be logged and skipped.
func (b *Banks) FindByInstIdx(instIdx int) (p Pool, idx int, ok bool) {
	for _, pool := range poolOrder {
		for i := range b.pools[pool] {
			s := &b.pools[pool][i]
			if s.Busy && s.InstIdx == instIdx {
				return pool, i, true
			}
		}
	}
	return 0, 0, false
}

// StationRef identifies a station by its pool and slot index.
type StationRef struct {
	Pool Pool
	Idx  int
}

// Broadcast applies a CDB result to every busy station in every pool
// waiting on producer, in the fixed pool order. It returns two lists:
// vjResolved holds the (pool, index) of every STORE station whose Vj (data)
// was just resolved to producer, which the caller uses to propagate that
// STORE's own ROB value; becameReady holds every station of any pool that
// was not fully ready before this broadcast and is now, which the caller
// uses to gate Execute-Start so a same-cycle wake-up still waits a cycle
// (spec.md §5).
func (b *Banks) Broadcast(producer rob.Index, value int) (vjResolved, becameReady []StationRef) {
	for _, pool := range poolOrder {
		stations := b.pools[pool]
		for i := range stations {
			wasReady := stations[i].ReadyToExecute()
			jUpdated, _ := stations[i].ReceiveBroadcast(producer, value)
			if jUpdated && pool == PoolStore {
				vjResolved = append(vjResolved, StationRef{pool, i})
			}
			if !wasReady && stations[i].ReadyToExecute() {
				becameReady = append(becameReady, StationRef{pool, i})
			}
		}
	}
	return vjResolved, becameReady
}
