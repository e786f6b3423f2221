package inst_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tomasim/inst"
)

func TestInst(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inst Suite")
}

var _ = Describe("Parse", func() {
	It("parses three-operand arithmetic instructions", func() {
		result := inst.Parse(strings.NewReader("ADD F1, F2, F3\n"))
		Expect(result.Warnings).To(BeEmpty())
		Expect(result.Instructions).To(HaveLen(1))
		got := result.Instructions[0]
		Expect(got.Op).To(Equal(inst.ADD))
		Expect(got.Dest).To(Equal("F1"))
		Expect(got.Src1).To(Equal("F2"))
		Expect(got.Src2).To(Equal("F3"))
	})

	It("parses LOAD with an offset(base) memory reference", func() {
		result := inst.Parse(strings.NewReader("LOAD F1, 100(F0)\n"))
		Expect(result.Instructions).To(HaveLen(1))
		got := result.Instructions[0]
		Expect(got.Op).To(Equal(inst.LOAD))
		Expect(got.Dest).To(Equal("F1"))
		Expect(got.Src1).To(Equal("100"))
		Expect(got.Src2).To(Equal("F0"))
	})

	It("accepts the L.D/S.D mnemonic aliases", func() {
		result := inst.Parse(strings.NewReader("L.D F2, 8(F3)\nS.D F2, 8(F3)\n"))
		Expect(result.Instructions).To(HaveLen(2))
		Expect(result.Instructions[0].Op).To(Equal(inst.LOAD))
		Expect(result.Instructions[1].Op).To(Equal(inst.STORE))
	})

	It("parses STORE with the data register as Src1 and offset as Dest", func() {
		result := inst.Parse(strings.NewReader("STORE F2, 50(F0)\n"))
		Expect(result.Instructions).To(HaveLen(1))
		got := result.Instructions[0]
		Expect(got.Op).To(Equal(inst.STORE))
		Expect(got.Src1).To(Equal("F2"))
		Expect(got.Dest).To(Equal("50"))
		Expect(got.Src2).To(Equal("F0"))
	})

	It("ignores blank lines and comments", func() {
		result := inst.Parse(strings.NewReader("\n# a comment\nADD F1, F2, F3\n"))
		Expect(result.Instructions).To(HaveLen(1))
	})

	It("strips trailing commas even without internal whitespace rules", func() {
		result := inst.Parse(strings.NewReader("ADD F1,F2,F3\n"))
		Expect(result.Instructions).To(HaveLen(1))
		Expect(result.Instructions[0].Src2).To(Equal("F3"))
	})

	It("records a warning and skips an unknown mnemonic", func() {
		result := inst.Parse(strings.NewReader("FOO F1, F2, F3\nADD F4, F5, F6\n"))
		Expect(result.Instructions).To(HaveLen(1))
		Expect(result.Warnings).To(HaveLen(1))
		Expect(result.Warnings[0].Line).To(Equal(1))
	})

	It("records a warning for a malformed memory reference", func() {
		result := inst.Parse(strings.NewReader("LOAD F1, 100F0\n"))
		Expect(result.Instructions).To(BeEmpty())
		Expect(result.Warnings).To(HaveLen(1))
	})
})

var _ = Describe("Instruction.String", func() {
	It("renders arithmetic instructions", func() {
		i := inst.New(inst.MUL, "F1", "F2", "F3")
		Expect(i.String()).To(Equal("MUL F1,F2,F3"))
	})

	It("renders LOAD with offset(base) syntax", func() {
		i := inst.New(inst.LOAD, "F1", "100", "F0")
		Expect(i.String()).To(Equal("LOAD F1,100(F0)"))
	})

	It("renders STORE with the data register first", func() {
		i := inst.New(inst.STORE, "50", "F2", "F0")
		Expect(i.String()).To(Equal("STORE F2,50(F0)"))
	})
})

var _ = Describe("Cycle", func() {
	It("reports unset timestamps as not Set", func() {
		Expect(inst.NoCycle.Set()).To(BeFalse())
		Expect(inst.NoCycle.String()).To(Equal("-"))
	})

	It("reports a recorded cycle as Set", func() {
		c := inst.Cycle(4)
		Expect(c.Set()).To(BeTrue())
		Expect(c.String()).To(Equal("4"))
	})
})
