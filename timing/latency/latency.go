package latency

import "github.com/sarchlab/tomasim/inst"

// Table provides op-to-latency lookups, keeping the pipeline itself free of
// per-op switch statements.
type Table struct {
	config *Config
}

// NewTable creates a latency table with the spec's default values.
func NewTable() *Table {
	return &Table{config: DefaultConfig()}
}

// NewTableWithConfig creates a latency table from a custom configuration.
func NewTableWithConfig(config *Config) *Table {
	return &Table{config: config}
}

// GetLatency returns the execution latency in cycles for op.
func (t *Table) GetLatency(op inst.Op) uint64 {
	switch op {
	case inst.ADD, inst.SUB:
		return t.config.AddSubLatency
	case inst.MUL:
		return t.config.MulLatency
	case inst.DIV:
		return t.config.DivLatency
	case inst.LOAD:
		return t.config.LoadLatency
	case inst.STORE:
		return t.config.StoreLatency
	default:
		return 1
	}
}

// Config returns the underlying configuration.
func (t *Table) Config() *Config {
	return t.config
}
