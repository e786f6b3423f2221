// Package pipeline implements the Tomasulo/ROB pipeline controller: the
// per-cycle Commit -> Write-Result -> Issue -> Execute-Start ->
// Execute-Advance state machine spec.md §4.1 specifies, wired over the
// arch, rat, rob, rs, and exec packages.
package pipeline

import (
	"github.com/sarchlab/tomasim/arch"
	"github.com/sarchlab/tomasim/diag"
	"github.com/sarchlab/tomasim/exec"
	"github.com/sarchlab/tomasim/inst"
	"github.com/sarchlab/tomasim/rat"
	"github.com/sarchlab/tomasim/rob"
	"github.com/sarchlab/tomasim/rs"
	"github.com/sarchlab/tomasim/timing/cache"
	"github.com/sarchlab/tomasim/timing/latency"
)

// Controller orchestrates one simulated program through the pipeline, one
// cycle at a time.
type Controller struct {
	program []inst.Instruction

	registers *arch.RegisterFile
	memory    *arch.Memory

	rat   *rat.Table
	rob   *rob.ROB
	banks *rs.Banks

	tracker *exec.Tracker
	cdb     *exec.CDBQueue

	latencies *latency.Table
	dataCache *cache.Cache

	diag *diag.Log

	cycle     int
	nextIssue int

	// dataCacheCfg is stashed by WithDataCache and turned into c.dataCache
	// once option processing finishes, so WithDataCache itself stays a
	// plain value option rather than needing access to the Controller
	// being built.
	dataCacheCfg *cache.Config
}

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithROBSize overrides the default 16-entry ROB.
func WithROBSize(size int) Option {
	return func(c *Controller) { c.rob = rob.New(size) }
}

// WithRSSizes overrides the default reservation-station pool sizes
// (3 ADD/SUB, 2 MUL/DIV, 3 LOAD, 3 STORE).
func WithRSSizes(sizes rs.Sizes) Option {
	return func(c *Controller) { c.banks = rs.NewBanks(sizes) }
}

// WithLatencyConfig overrides the default per-op execute latencies.
func WithLatencyConfig(cfg *latency.Config) Option {
	return func(c *Controller) { c.latencies = latency.NewTableWithConfig(cfg) }
}

// WithDataCache attaches an optional L1 data-cache timing model in front of
// LOAD/STORE. When set, LOAD/STORE execute latency comes from the cache's
// hit/miss latency instead of the flat timing/latency constant (spec.md §10
// of SPEC_FULL.md). The cache only models timing and line occupancy; values
// still move through arch.Memory directly. Disabled by default.
func WithDataCache(cfg cache.Config) Option {
	return func(c *Controller) { c.dataCacheCfg = &cfg }
}

// New creates a Controller over program, ready to Step from cycle 0.
func New(program []inst.Instruction, opts ...Option) *Controller {
	c := &Controller{
		program:   program,
		registers: arch.NewRegisterFile(),
		memory:    arch.NewMemory(),
		rat:       rat.New(),
		rob:       rob.New(16),
		banks:     rs.NewBanks(rs.DefaultSizes()),
		tracker:   exec.NewTracker(),
		cdb:       exec.NewCDBQueue(),
		latencies: latency.NewTable(),
		diag:      diag.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.dataCacheCfg != nil {
		c.dataCache = cache.New(*c.dataCacheCfg)
	}
	return c
}

// Step advances the pipeline by exactly one cycle, running every stage in
// the order spec.md §4.1 fixes: Commit, Write-Result, Issue, Execute-Start,
// Execute-Advance.
func (c *Controller) Step() {
	c.commit()
	c.writeResult()
	c.issue()
	c.executeStart()
	c.executeAdvance()
	c.cycle++
}

// Done reports whether every instruction has committed and no pipeline
// stage holds any in-flight state.
func (c *Controller) Done() bool {
	return c.nextIssue >= len(c.program) &&
		c.rob.Empty() &&
		c.tracker.Len() == 0 &&
		c.cdb.Len() == 0
}

// Cycle returns the cycle that is about to run (i.e. the number of Step
// calls made so far).
func (c *Controller) Cycle() int { return c.cycle }

// Instructions returns the program, including whatever pipeline timestamps
// have been recorded so far.
func (c *Controller) Instructions() []inst.Instruction { return c.program }

// ROB exposes the reorder buffer, for the status printer and tests.
func (c *Controller) ROB() *rob.ROB { return c.rob }

// Banks exposes the reservation-station pools, for the status printer and
// tests.
func (c *Controller) Banks() *rs.Banks { return c.banks }

// RAT exposes the register alias table, for the status printer and tests.
func (c *Controller) RAT() *rat.Table { return c.rat }

// Registers exposes the architectural register file.
func (c *Controller) Registers() *arch.RegisterFile { return c.registers }

// Memory exposes architectural memory.
func (c *Controller) Memory() *arch.Memory { return c.memory }

// Diag exposes the diagnostic log accumulated so far.
func (c *Controller) Diag() *diag.Log { return c.diag }
