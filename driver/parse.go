package driver

import (
	"io"

	"github.com/sarchlab/tomasim/diag"
	"github.com/sarchlab/tomasim/inst"
)

// ParseProgram reads a program via inst.Parse and records every resulting
// warning to log as a Parse diagnostic (spec.md §7's "continue, don't
// abort" policy), so the driver's own diagnostics and the pipeline's later
// runtime/internal diagnostics land in the same inspectable log.
func ParseProgram(r io.Reader, log *diag.Log) []inst.Instruction {
	result := inst.Parse(r)
	for _, w := range result.Warnings {
		log.Record(-1, diag.Parse, "%s", w.String())
	}
	return result.Instructions
}
