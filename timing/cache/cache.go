// Package cache models an L1 data-cache timing layer in front of LOAD/STORE,
// using Akita's directory/tag machinery to decide hit, miss, and eviction.
// Unlike a real byte-addressed cache, this model never stores or moves data:
// arch.Memory is word-addressed and already holds every value LOAD/STORE
// need (pipeline/writeresult.go reads it, pipeline/commit.go writes it), so
// the cache only tracks which lines are resident and reports how long an
// access should take.
package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Config holds cache configuration parameters, all expressed in words
// rather than bytes, matching arch.Memory's word addressing.
type Config struct {
	// Size is the total capacity, in words.
	Size int
	// Associativity is the number of ways.
	Associativity int
	// BlockSize is the number of words per cache line.
	BlockSize int
	// HitLatency in cycles.
	HitLatency uint64
	// MissLatency in cycles (includes the cost of reaching memory).
	MissLatency uint64
}

// DefaultL1DConfig returns a small default configuration for the optional
// L1 data cache in front of LOAD/STORE.
func DefaultL1DConfig() Config {
	return Config{
		Size:          512, // 512 words
		Associativity: 4,   // 4-way
		BlockSize:     8,   // 8 words/line
		HitLatency:    1,   // 1 cycle
		MissLatency:   10,  // 10 cycles, vs. the flat 2-cycle LOAD/STORE latency
	}
}

// AccessResult reports the outcome of a cache access. There is no Data
// field: the cache is a timing model only, never a data path.
type AccessResult struct {
	Hit bool
	// Latency is the number of cycles this access takes.
	Latency uint64
	// Evicted is true if a resident line was evicted to make room.
	Evicted bool
	// EvictedAddr is the evicted line's address (if Evicted is true).
	EvictedAddr int
}

// Statistics holds cache performance counters.
type Statistics struct {
	Reads      uint64
	Writes     uint64
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Writebacks uint64
}

// Cache is a tag-only timing model built on an Akita directory. It tracks
// line residency and dirtiness for hit/miss/eviction accounting but holds
// no data of its own.
type Cache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	stats     Statistics
}

// New creates a cache with the given configuration.
func New(config Config) *Cache {
	numSets := config.Size / (config.Associativity * config.BlockSize)
	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
	}
}

// Config returns the cache configuration.
func (c *Cache) Config() Config { return c.config }

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics { return c.stats }

// ResetStats clears cache statistics.
func (c *Cache) ResetStats() { c.stats = Statistics{} }

func (c *Cache) lineAddr(addr int) uint64 {
	return uint64(addr / c.config.BlockSize * c.config.BlockSize)
}

// Read looks up the line containing addr and reports whether it hit, along
// with the resulting latency. A miss allocates the line, possibly evicting
// another.
func (c *Cache) Read(addr int) AccessResult {
	c.stats.Reads++
	lineAddr := c.lineAddr(addr)

	block := c.directory.Lookup(0, lineAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		return AccessResult{Hit: true, Latency: c.config.HitLatency}
	}

	c.stats.Misses++
	return c.handleMiss(lineAddr, false)
}

// Write looks up the line containing addr, marking it dirty on a hit, or
// write-allocating it on a miss.
func (c *Cache) Write(addr int) AccessResult {
	c.stats.Writes++
	lineAddr := c.lineAddr(addr)

	block := c.directory.Lookup(0, lineAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		block.IsDirty = true
		return AccessResult{Hit: true, Latency: c.config.HitLatency}
	}

	c.stats.Misses++
	return c.handleMiss(lineAddr, true)
}

func (c *Cache) handleMiss(lineAddr uint64, isWrite bool) AccessResult {
	result := AccessResult{Hit: false, Latency: c.config.MissLatency}

	victim := c.directory.FindVictim(lineAddr)
	if victim == nil {
		return result
	}

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedAddr = int(victim.Tag)
		if victim.IsDirty {
			c.stats.Writebacks++
		}
	}

	victim.Tag = lineAddr
	victim.IsValid = true
	victim.IsDirty = isWrite

	c.directory.Visit(victim)
	return result
}

// Invalidate marks the line containing addr as invalid.
func (c *Cache) Invalidate(addr int) {
	lineAddr := c.lineAddr(addr)
	block := c.directory.Lookup(0, lineAddr)
	if block != nil && block.IsValid {
		block.IsValid = false
		block.IsDirty = false
	}
}

// Flush counts a writeback for every dirty line and invalidates the cache.
// There is nothing to actually copy back: arch.Memory already holds every
// committed value directly (pipeline/commit.go), so Flush only settles the
// cache's own bookkeeping.
func (c *Cache) Flush() {
	for _, set := range c.directory.GetSets() {
		for _, block := range set.Blocks {
			if block.IsValid && block.IsDirty {
				c.stats.Writebacks++
			}
			block.IsValid = false
			block.IsDirty = false
		}
	}
}

// Reset invalidates every line and clears statistics.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}
