// Package main provides the entry point for tomasim.
// tomasim is a cycle-accurate Tomasulo/ROB instruction scheduling simulator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/tomasim/diag"
	"github.com/sarchlab/tomasim/driver"
	"github.com/sarchlab/tomasim/pipeline"
	"github.com/sarchlab/tomasim/timing/latency"
)

var (
	filePath   = flag.String("file", "", "Path to the instruction program file")
	robSize    = flag.Int("rob", 16, "Number of reorder-buffer slots")
	configPath = flag.String("config", "", "Path to a latency config JSON file")
	step       = flag.Bool("step", false, "Interactive mode: prompt for ENTER between cycles")
	verbose    = flag.Bool("v", false, "Print the status table every cycle")
)

func main() {
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: tomasim -file <program.txt> [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening program file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	runID := driver.NewRunID()

	opts := []pipeline.Option{pipeline.WithROBSize(*robSize)}
	if *configPath != "" {
		cfg, err := latency.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading latency config: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, pipeline.WithLatencyConfig(cfg))
	}

	log := diag.New()
	program := driver.ParseProgram(f, log)

	if *verbose {
		fmt.Printf("Run %s: loaded %d instructions from %s\n", runID, len(program), *filePath)
	}

	ctrl := pipeline.New(program, opts...)
	driver.Run(os.Stdout, os.Stdin, ctrl, *verbose, *step)

	if log.Len() > 0 {
		fmt.Fprintf(os.Stderr, "\nDiagnostics for run %s:\n", runID)
		log.WriteTo(os.Stderr)
	}
	if ctrl.Diag().Len() > 0 {
		ctrl.Diag().WriteTo(os.Stderr)
	}
}
