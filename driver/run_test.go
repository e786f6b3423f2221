package driver_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tomasim/driver"
	"github.com/sarchlab/tomasim/inst"
	"github.com/sarchlab/tomasim/pipeline"
)

var _ = Describe("Run", func() {
	It("runs to completion and prints the final register dump", func() {
		ctrl := pipeline.New([]inst.Instruction{
			inst.New(inst.ADD, "F1", "F2", "F3"),
		})
		var out bytes.Buffer
		driver.Run(&out, strings.NewReader(""), ctrl, false, false)

		Expect(ctrl.Done()).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("Simulation complete"))
		Expect(out.String()).To(ContainSubstring("F1 = 20"))
	})

	It("prints a status table each cycle in verbose mode", func() {
		ctrl := pipeline.New([]inst.Instruction{
			inst.New(inst.ADD, "F1", "F2", "F3"),
		})
		var out bytes.Buffer
		driver.Run(&out, strings.NewReader(""), ctrl, true, false)

		Expect(strings.Count(out.String(), "==== Cycle")).To(BeNumerically(">", 1))
	})

	It("blocks on one line of input per cycle in step mode", func() {
		ctrl := pipeline.New([]inst.Instruction{
			inst.New(inst.ADD, "F1", "F2", "F3"),
		})
		// One newline per cycle the program takes to complete; a short
		// stdin just means ReadString hits EOF on later cycles, which is
		// treated the same as an empty line.
		stdin := strings.Repeat("\n", 10)
		var out bytes.Buffer
		driver.Run(&out, strings.NewReader(stdin), ctrl, false, true)

		Expect(ctrl.Done()).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("Advance [ENTER]"))
	})
})
