package pipeline

import (
	"github.com/sarchlab/tomasim/diag"
	"github.com/sarchlab/tomasim/inst"
)

// writeResult broadcasts at most one completed instruction's result on the
// CDB per cycle (spec.md §4.5): compute the result from the operands the
// station captured, publish it to the ROB, wake dependents, then free the
// station.
func (c *Controller) writeResult() {
	instIdx, ok := c.cdb.Dequeue()
	if !ok {
		return
	}

	pool, stationIdx, ok := c.banks.FindByInstIdx(instIdx)
	if !ok {
		// Internal inconsistency (spec.md §4.8): log and skip, don't
		// advance any timestamp.
		c.diag.Record(c.cycle, diag.Internal,
			"write-result found no reservation station for instruction %d", instIdx)
		return
	}
	station := c.banks.Get(pool, stationIdx)
	owner := station.Owner

	var value, address int
	switch station.Op {
	case inst.ADD:
		value = station.Vj.Value + station.Vk.Value
	case inst.SUB:
		value = station.Vj.Value - station.Vk.Value
	case inst.MUL:
		value = station.Vj.Value * station.Vk.Value
	case inst.DIV:
		if station.Vk.Value == 0 {
			c.diag.Record(c.cycle, diag.Runtime, "divide by zero in instruction %d", instIdx)
			value = 0
		} else {
			value = station.Vj.Value / station.Vk.Value
		}
	case inst.LOAD:
		address = station.A + station.Vk.Value
		if c.memory.InRange(address) {
			value = c.memory.Read(address)
		} else {
			c.diag.Record(c.cycle, diag.Runtime, "load from out-of-range address %d", address)
			value = 0
		}
	case inst.STORE:
		address = station.A + station.Vk.Value
		value = station.Vj.Value
	}

	c.rob.PublishResult(owner, value, address, true)
	c.program[instIdx].WriteResult = inst.Cycle(c.cycle)

	vjResolved, becameReady := c.banks.Broadcast(owner, value)
	for _, resolved := range vjResolved {
		waker := c.banks.Get(resolved.Pool, resolved.Idx)
		c.rob.MarkValueReady(waker.Owner, value)
	}
	for _, ref := range becameReady {
		c.banks.Get(ref.Pool, ref.Idx).ReadyCycle = c.cycle
	}

	c.banks.Get(pool, stationIdx).Clear()
}
