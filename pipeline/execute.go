package pipeline

import (
	"github.com/sarchlab/tomasim/inst"
	"github.com/sarchlab/tomasim/rs"
)

// executeStart moves every ready-but-not-yet-tracked station into the
// execution tracker (spec.md §4.3). Iteration is in the fixed pool order so
// which station starts first is deterministic.
func (c *Controller) executeStart() {
	for _, pool := range rs.PoolOrder() {
		stations := c.banks.Stations(pool)
		for i := range stations {
			s := c.banks.Get(pool, i)
			if !s.ReadyToExecute() || c.tracker.Contains(pool, i) {
				continue
			}
			// A station that became ready this very cycle (via a same-cycle
			// CDB broadcast, or at Issue) must wait until next cycle to
			// start (spec.md §5's Issue-before-Execute-Start rule,
			// generalized to any operand resolution).
			if s.ReadyCycle < 0 || c.cycle <= s.ReadyCycle {
				continue
			}

			c.tracker.Start(pool, i, s.InstIdx, int(c.latencyFor(s, pool)))
			c.rob.SetExecuting(s.Owner)

			// A STORE's data (Qj) may have resolved between Issue and now;
			// propagate it to the ROB entry as soon as it's known (spec.md
			// §4.3).
			if s.Op == inst.STORE && s.Vj.Ready {
				c.rob.MarkValueReady(s.Owner, s.Vj.Value)
			}
		}
	}
}

// executeAdvance decrements every in-flight execution and enqueues
// finished ones onto the CDB (spec.md §4.4).
func (c *Controller) executeAdvance() {
	for _, r := range c.tracker.Advance() {
		c.program[r.InstIdx].ExecComp = inst.Cycle(c.cycle)
		c.cdb.Enqueue(r.InstIdx)
	}
}

// latencyFor returns the execute-stage latency for a station's op. LOAD and
// STORE consult the optional data cache when one is configured, since the
// effective address (A + Vk) is already known once the station is ready to
// execute; every other op uses the flat timing/latency table.
//
// The cache call here only ever affects timing. STORE's line gets marked
// dirty at Execute-Start, well before the value actually lands in
// arch.Memory at Commit (commit.go), but the cache has no data of its own
// to diverge from arch.Memory over: it is consulted for latency and
// hit/miss bookkeeping alone, never as the source of a LOAD's value
// (writeresult.go reads arch.Memory directly).
func (c *Controller) latencyFor(s *rs.Station, pool rs.Pool) uint64 {
	if c.dataCache == nil || (pool != rs.PoolLoad && pool != rs.PoolStore) {
		return c.latencies.GetLatency(s.Op)
	}

	addr := s.A + s.Vk.Value
	if pool == rs.PoolLoad {
		return c.dataCache.Read(addr).Latency
	}
	return c.dataCache.Write(addr).Latency
}
