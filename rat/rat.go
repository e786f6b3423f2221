// Package rat implements the Register Alias Table: for each architectural
// register, whether some in-flight instruction will produce its next value,
// and which ROB slot that instruction occupies.
package rat

import "github.com/sarchlab/tomasim/rob"

// Entry is one register's alias-table row.
type Entry struct {
	// Pending is true if some in-flight instruction owns this register.
	Pending bool
	// Producer is the ROB index that will write this register. Only
	// meaningful when Pending is true.
	Producer rob.Index
}

// Table maps register names to their alias entries. A register absent from
// the map is treated as not pending, so the zero value of Table works for
// registers not yet touched by any instruction.
type Table struct {
	entries map[string]Entry
}

// New creates an empty alias table: every register initially resolves to
// its architectural value.
func New() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Lookup returns the alias entry for a register.
func (t *Table) Lookup(reg string) Entry {
	return t.entries[reg]
}

// Rename records that reg's next value will come from the given ROB index.
// This is what Issue calls when an instruction writes a register (spec.md
// §4.2 step 4): register renaming, in the sense that subsequent consumers
// of reg will read this ROB index rather than the architectural value.
func (t *Table) Rename(reg string, producer rob.Index) {
	t.entries[reg] = Entry{Pending: true, Producer: producer}
}

// ClearIfOwner clears reg's pending alias only if it is still owned by the
// given ROB index. Commit calls this: if a younger instruction has since
// renamed the same register, that alias must survive this older
// instruction's commit (spec.md §4.6).
func (t *Table) ClearIfOwner(reg string, owner rob.Index) {
	if e, ok := t.entries[reg]; ok && e.Pending && e.Producer == owner {
		delete(t.entries, reg)
	}
}

// PendingRegisters returns the names of every register that is currently
// pending, for the status printer's RAT table (spec.md §6).
func (t *Table) PendingRegisters() []string {
	names := make([]string, 0, len(t.entries))
	for name, e := range t.entries {
		if e.Pending {
			names = append(names, name)
		}
	}
	return names
}
