// Package latency provides the per-operation execution-latency table used
// by Execute-Start (spec.md §4.3), adapted from the teacher's TimingConfig
// pattern: a JSON-serializable struct with a documented default and a
// validator, rather than constants baked into the pipeline.
package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the execution latency, in cycles, for each operation.
// Values default to spec.md §4.3's defaults.
type Config struct {
	// AddSubLatency is the execution latency for ADD and SUB. Default: 2.
	AddSubLatency uint64 `json:"add_sub_latency"`

	// MulLatency is the execution latency for MUL. Default: 10.
	MulLatency uint64 `json:"mul_latency"`

	// DivLatency is the execution latency for DIV. Default: 40.
	DivLatency uint64 `json:"div_latency"`

	// LoadLatency is the execution latency for LOAD when no data cache is
	// configured. Default: 2.
	LoadLatency uint64 `json:"load_latency"`

	// StoreLatency is the execution latency for STORE when no data cache is
	// configured. Default: 2.
	StoreLatency uint64 `json:"store_latency"`
}

// DefaultConfig returns spec.md §4.3's default latencies.
func DefaultConfig() *Config {
	return &Config{
		AddSubLatency: 2,
		MulLatency:    10,
		DivLatency:    40,
		LoadLatency:   2,
		StoreLatency:  2,
	}
}

// LoadConfig loads a Config from a JSON file, starting from DefaultConfig so
// a partial file only overrides the fields it mentions.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read latency config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse latency config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize latency config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write latency config file: %w", err)
	}

	return nil
}

// Validate checks that every latency is positive; spec.md §5 requires
// execComp > issue and writeResult > execComp, which a zero-cycle stage
// would violate.
func (c *Config) Validate() error {
	if c.AddSubLatency == 0 {
		return fmt.Errorf("add_sub_latency must be > 0")
	}
	if c.MulLatency == 0 {
		return fmt.Errorf("mul_latency must be > 0")
	}
	if c.DivLatency == 0 {
		return fmt.Errorf("div_latency must be > 0")
	}
	if c.LoadLatency == 0 {
		return fmt.Errorf("load_latency must be > 0")
	}
	if c.StoreLatency == 0 {
		return fmt.Errorf("store_latency must be > 0")
	}
	return nil
}

// Clone returns a deep copy, used to give each test its own isolated
// config fixture.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
