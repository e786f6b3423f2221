package pipeline

import (
	"github.com/sarchlab/tomasim/diag"
	"github.com/sarchlab/tomasim/inst"
)

// commit retires the ROB head if it is eligible (spec.md §4.6): writes the
// architectural register file or memory, then frees the slot. At most one
// instruction commits per cycle.
func (c *Controller) commit() {
	if !c.rob.CanCommit() {
		return
	}

	head := c.rob.HeadIndex()
	entry := c.rob.Get(head)

	if entry.Op == inst.STORE {
		if c.memory.InRange(entry.Address) {
			c.memory.Write(entry.Address, entry.Value)
		} else {
			c.diag.Record(c.cycle, diag.Runtime,
				"store to out-of-range address %d dropped", entry.Address)
		}
	} else {
		c.registers.Write(entry.DestReg, entry.Value)
		c.rat.ClearIfOwner(entry.DestReg, head)
	}

	c.program[entry.InstIdx].Commit = inst.Cycle(c.cycle)
	c.rob.CommitHead()
}
