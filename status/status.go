// Package status renders the pipeline's observable, stable-shape printout:
// per-instruction timestamps, the four reservation-station tables, the ROB,
// and the register alias table (spec.md §6), plus the original simulator's
// final register dump (SPEC_FULL.md §11).
package status

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/sarchlab/tomasim/pipeline"
	"github.com/sarchlab/tomasim/rs"
)

// Print writes the full per-cycle status table to w.
func Print(w io.Writer, ctrl *pipeline.Controller) {
	fmt.Fprintf(w, "\n==== Cycle %d ====\n", ctrl.Cycle())
	printInstructions(w, ctrl)
	for _, pool := range rs.PoolOrder() {
		printStations(w, ctrl, pool)
	}
	printROB(w, ctrl)
	printRAT(w, ctrl)
}

func printInstructions(w io.Writer, ctrl *pipeline.Controller) {
	fmt.Fprintln(w, "\nInstructions:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tInstruction\tIssue\tExecComp\tWriteResult\tCommit")
	for i, in := range ctrl.Instructions() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i, in.String(), in.Issue, in.ExecComp, in.WriteResult, in.Commit)
	}
	tw.Flush()
}

func printStations(w io.Writer, ctrl *pipeline.Controller, pool rs.Pool) {
	fmt.Fprintf(w, "\nReservation Stations (%s):\n", pool)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tBusy\tOp\tVj\tVk\tQj\tQk\tDest\tA\tInstIdx")
	for i, s := range ctrl.Banks().Stations(pool) {
		if !s.Busy {
			fmt.Fprintf(tw, "%d\tno\t-\t-\t-\t-\t-\t-\t-\t-\n", i)
			continue
		}
		fmt.Fprintf(tw, "%d\tyes\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			i, s.Op, operand(s.Vj), operand(s.Vk), tag(s.Vj), tag(s.Vk),
			ctrl.ROB().Get(s.Owner).DestReg, s.A, s.InstIdx)
	}
	tw.Flush()
}

// operand renders Vj/Vk as the captured value, or "-" while still pending.
func operand(t rs.Tag) string {
	if !t.Ready {
		return "-"
	}
	return fmt.Sprintf("%d", t.Value)
}

// tag renders Qj/Qk as the producing ROB index, or "-" once resolved.
func tag(t rs.Tag) string {
	if t.Ready {
		return "-"
	}
	return fmt.Sprintf("%d", t.Producer)
}

func printROB(w io.Writer, ctrl *pipeline.Controller) {
	fmt.Fprintln(w, "\nReorder Buffer:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tBusy\tInstIdx\tType\tState\tDestReg\tValueReady\tValue\tAddress")
	for i, e := range ctrl.ROB().All() {
		if !e.Busy {
			fmt.Fprintf(tw, "%d\tno\t-\t-\t%s\t-\t-\t-\t-\n", i, e.State)
			continue
		}
		fmt.Fprintf(tw, "%d\tyes\t%d\t%s\t%s\t%s\t%t\t%d\t%d\n",
			i, e.InstIdx, e.Op, e.State, displayOr(e.DestReg), e.ValueReady, e.Value, e.Address)
	}
	tw.Flush()
}

func printRAT(w io.Writer, ctrl *pipeline.Controller) {
	fmt.Fprintln(w, "\nRegister Alias Table (pending only):")
	pending := ctrl.RAT().PendingRegisters()
	sortRegisters(pending)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Register\tProducerROB")
	for _, reg := range pending {
		fmt.Fprintf(tw, "%s\t%d\n", reg, ctrl.RAT().Lookup(reg).Producer)
	}
	tw.Flush()
}

// PrintFinalRegisters prints every architectural register's final value,
// matching the original simulator's printRegisters() (SPEC_FULL.md §11).
func PrintFinalRegisters(w io.Writer, ctrl *pipeline.Controller) {
	fmt.Fprintln(w, "\nFinal register values:")
	fmt.Fprintln(w, "---------------------------------")
	snapshot := ctrl.Registers().Snapshot()
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sortRegisters(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s = %d\n", name, snapshot[name])
	}
	fmt.Fprintln(w, "---------------------------------")
}

func displayOr(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// sortRegisters orders register names numerically by the digits following
// their leading letter (F1 before F10), falling back to a plain string sort
// for anything that isn't of that shape.
func sortRegisters(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ni, oki := registerNumber(names[i])
		nj, okj := registerNumber(names[j])
		if oki && okj {
			return ni < nj
		}
		return names[i] < names[j]
	})
}

func registerNumber(name string) (int, bool) {
	if len(name) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
