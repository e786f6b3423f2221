package driver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/xid"

	"github.com/sarchlab/tomasim/pipeline"
	"github.com/sarchlab/tomasim/status"
)

// RunID identifies one simulation run so logs from separate runs (e.g.
// successive -step invocations) can be told apart without relying on
// wall-clock time (SPEC_FULL.md §10). cmd/tomasim prints it in the verbose
// load banner and in the heading above the parse diagnostics; individual
// diag.Entry records do not carry it.
type RunID = xid.ID

// NewRunID mints a fresh run identifier.
func NewRunID() RunID { return xid.New() }

// Run drives ctrl to completion, printing a status table after every cycle
// when verbose is true. If step is true, it blocks on a line from in
// between cycles, mirroring the original simulator's cin.get() prompt.
func Run(out io.Writer, in io.Reader, ctrl *pipeline.Controller, verbose, step bool) {
	reader := bufio.NewReader(in)

	for !ctrl.Done() {
		ctrl.Step()

		if verbose || step {
			status.Print(out, ctrl)
		}
		if step {
			fmt.Fprint(out, "\nAdvance [ENTER]")
			reader.ReadString('\n')
		}
	}

	fmt.Fprintln(out, "\n==== Simulation complete ====")
	status.PrintFinalRegisters(out, ctrl)
}
