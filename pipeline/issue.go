package pipeline

import (
	"strconv"

	"github.com/sarchlab/tomasim/inst"
	"github.com/sarchlab/tomasim/rob"
	"github.com/sarchlab/tomasim/rs"
)

// issue dispatches at most one new instruction per spec.md §4.2. It stalls
// (no state change) if either a ROB slot or a station in the right pool is
// unavailable.
func (c *Controller) issue() {
	if c.nextIssue >= len(c.program) {
		return
	}

	in := c.program[c.nextIssue]
	pool := rs.PoolFor(in.Op)

	if !c.rob.HasFreeSlot() {
		return
	}
	stationIdx := c.banks.FindFree(pool)
	if stationIdx == -1 {
		return
	}

	destReg := in.Dest
	if in.Op == inst.STORE {
		destReg = ""
	}
	robIdx := c.rob.Allocate(c.nextIssue, in.Op, destReg)

	station := rs.Station{
		Busy:       true,
		Op:         in.Op,
		Owner:      robIdx,
		InstIdx:    c.nextIssue,
		ReadyCycle: rs.NotReady,
	}

	switch in.Op {
	case inst.ADD, inst.SUB, inst.MUL, inst.DIV:
		station.Vj = c.resolveOperand(in.Src1)
		station.Vk = c.resolveOperand(in.Src2)

	case inst.LOAD:
		station.A = atoiOrZero(in.Src1)
		station.Vj = rs.ReadyTag(0) // unused for LOAD
		station.Vk = c.resolveOperand(in.Src2)

	case inst.STORE:
		station.A = atoiOrZero(in.Dest)
		station.Vj = c.resolveOperand(in.Src1) // data
		station.Vk = c.resolveOperand(in.Src2) // base
	}

	if station.ReadyToExecute() {
		station.ReadyCycle = c.cycle
	}
	c.banks.Set(pool, stationIdx, station)

	if in.Op != inst.STORE {
		c.rat.Rename(in.Dest, robIdx)
	} else if station.Vj.Ready {
		// STORE specifics (spec.md §4.2): data already known at Issue.
		c.rob.MarkValueReady(robIdx, station.Vj.Value)
	}

	c.program[c.nextIssue].Issue = inst.Cycle(c.cycle)
	c.nextIssue++
}

// resolveOperand implements the operand-capture rules of spec.md §4.2:
// forward an already-published ROB value, else record the dependency, else
// read the architectural value.
func (c *Controller) resolveOperand(reg string) rs.Tag {
	entry := c.rat.Lookup(reg)
	if !entry.Pending {
		return rs.ReadyTag(c.registers.Read(reg))
	}

	producer := c.rob.Get(entry.Producer)
	if producer.State == rob.WriteResult && producer.ValueReady {
		return rs.ReadyTag(producer.Value)
	}
	return rs.PendingTag(entry.Producer)
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
