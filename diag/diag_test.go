package diag_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tomasim/diag"
)

func TestDiag(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Diag Suite")
}

var _ = Describe("Log", func() {
	It("records entries in order", func() {
		l := diag.New()
		l.Record(-1, diag.Parse, "unrecognized mnemonic %q", "FOO")
		l.Record(3, diag.Runtime, "divide by zero")

		Expect(l.Len()).To(Equal(2))
		Expect(l.Entries()[0].Severity).To(Equal(diag.Parse))
		Expect(l.Entries()[1].Cycle).To(Equal(3))
	})

	It("renders cycle-less entries without a cycle number", func() {
		l := diag.New()
		l.Record(-1, diag.Parse, "bad line")

		var buf bytes.Buffer
		l.WriteTo(&buf)
		Expect(buf.String()).To(ContainSubstring("[PARSE]"))
		Expect(buf.String()).NotTo(ContainSubstring("cycle"))
	})

	It("renders cycle-bearing entries with their cycle number", func() {
		l := diag.New()
		l.Record(7, diag.Internal, "write-back found no owning station")

		var buf bytes.Buffer
		l.WriteTo(&buf)
		Expect(buf.String()).To(ContainSubstring("cycle 7"))
		Expect(buf.String()).To(ContainSubstring("[INTERNAL]"))
	})
})
