package latency_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tomasim/inst"
	"github.com/sarchlab/tomasim/timing/latency"
)

func TestLatency(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Latency Suite")
}

var _ = Describe("Table", func() {
	var table *latency.Table

	BeforeEach(func() {
		table = latency.NewTable()
	})

	Describe("Default latency values", func() {
		It("matches spec.md §4.3's defaults", func() {
			Expect(table.GetLatency(inst.ADD)).To(Equal(uint64(2)))
			Expect(table.GetLatency(inst.SUB)).To(Equal(uint64(2)))
			Expect(table.GetLatency(inst.MUL)).To(Equal(uint64(10)))
			Expect(table.GetLatency(inst.DIV)).To(Equal(uint64(40)))
			Expect(table.GetLatency(inst.LOAD)).To(Equal(uint64(2)))
			Expect(table.GetLatency(inst.STORE)).To(Equal(uint64(2)))
		})
	})

	Describe("Custom configuration", func() {
		It("uses custom config values", func() {
			config := &latency.Config{
				AddSubLatency: 1,
				MulLatency:    4,
				DivLatency:    12,
				LoadLatency:   3,
				StoreLatency:  3,
			}
			custom := latency.NewTableWithConfig(config)
			Expect(custom.GetLatency(inst.ADD)).To(Equal(uint64(1)))
			Expect(custom.GetLatency(inst.MUL)).To(Equal(uint64(4)))
			Expect(custom.GetLatency(inst.LOAD)).To(Equal(uint64(3)))
		})
	})
})

var _ = Describe("Config", func() {
	Describe("Default config", func() {
		It("is valid", func() {
			Expect(latency.DefaultConfig().Validate()).To(Succeed())
		})
	})

	Describe("Validation", func() {
		It("rejects a zero add/sub latency", func() {
			config := latency.DefaultConfig()
			config.AddSubLatency = 0
			Expect(config.Validate()).To(HaveOccurred())
		})

		It("rejects a zero mul latency", func() {
			config := latency.DefaultConfig()
			config.MulLatency = 0
			Expect(config.Validate()).To(HaveOccurred())
		})

		It("rejects a zero load latency", func() {
			config := latency.DefaultConfig()
			config.LoadLatency = 0
			Expect(config.Validate()).To(HaveOccurred())
		})

		It("rejects a zero store latency", func() {
			config := latency.DefaultConfig()
			config.StoreLatency = 0
			Expect(config.Validate()).To(HaveOccurred())
		})
	})

	Describe("Clone", func() {
		It("creates an independent copy", func() {
			original := latency.DefaultConfig()
			clone := original.Clone()
			clone.AddSubLatency = 100

			Expect(original.AddSubLatency).To(Equal(uint64(2)))
			Expect(clone.AddSubLatency).To(Equal(uint64(100)))
		})
	})

	Describe("File operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "latency-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("saves and loads a config", func() {
			original := latency.DefaultConfig()
			original.MulLatency = 20
			original.LoadLatency = 5

			path := filepath.Join(tempDir, "latency.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.MulLatency).To(Equal(uint64(20)))
			Expect(loaded.LoadLatency).To(Equal(uint64(5)))
		})

		It("returns an error for a non-existent file", func() {
			_, err := latency.LoadConfig(filepath.Join(tempDir, "missing.json"))
			Expect(err).To(HaveOccurred())
		})

		It("returns an error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			Expect(os.WriteFile(path, []byte("not valid json"), 0644)).To(Succeed())

			_, err := latency.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})

		It("returns an error when a loaded config fails validation", func() {
			path := filepath.Join(tempDir, "zero.json")
			Expect(os.WriteFile(path, []byte(`{"mul_latency": 0}`), 0644)).To(Succeed())

			_, err := latency.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
