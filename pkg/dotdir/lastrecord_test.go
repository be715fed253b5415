package dotdir_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/dotdir"
)

var _ = Describe("dotdir.Manager last-record", func() {
	var tmpDir string
	var m *dotdir.Manager

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "dotdir-test-*")
		Expect(err).NotTo(HaveOccurred())
		m = dotdir.NewManager()
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadLastRecord", func() {
		It("returns nil when no last-record file exists", func() {
			record, err := m.LoadLastRecord(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(record).To(BeNil())
		})

		It("loads a valid last-record state", func() {
			data := `{"kind":"guide","id":"abc123","created_at":"2026-01-01T00:00:00Z"}`
			err := os.WriteFile(filepath.Join(tmpDir, "last_record.json"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			record, err := m.LoadLastRecord(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(record).NotTo(BeNil())
			Expect(record.Kind).To(Equal(dotdir.RecordKindGuide))
			Expect(record.ID).To(Equal("abc123"))
		})

		It("returns error for invalid JSON", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "last_record.json"), []byte("not json"), 0o600)
			Expect(err).NotTo(HaveOccurred())

			record, err := m.LoadLastRecord(tmpDir)
			Expect(err).To(HaveOccurred())
			Expect(record).To(BeNil())
		})
	})

	Describe("SaveLastRecord", func() {
		It("persists last-record state to disk", func() {
			record := &dotdir.LastRecord{
				Kind:      dotdir.RecordKindGrade,
				ID:        "def456",
				CreatedAt: time.Now().UTC(),
			}

			err := m.SaveLastRecord(record, tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = os.Stat(filepath.Join(tmpDir, "last_record.json"))
			Expect(err).NotTo(HaveOccurred())

			loaded, err := m.LoadLastRecord(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Kind).To(Equal(dotdir.RecordKindGrade))
			Expect(loaded.ID).To(Equal("def456"))
		})

		It("returns error for nil state", func() {
			err := m.SaveLastRecord(nil, tmpDir)
			Expect(err).To(HaveOccurred())
		})

		It("overwrites existing state", func() {
			first := &dotdir.LastRecord{Kind: dotdir.RecordKindGuide, ID: "first"}
			second := &dotdir.LastRecord{Kind: dotdir.RecordKindGuide, ID: "second"}

			Expect(m.SaveLastRecord(first, tmpDir)).To(Succeed())
			Expect(m.SaveLastRecord(second, tmpDir)).To(Succeed())

			loaded, err := m.LoadLastRecord(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.ID).To(Equal("second"))
		})
	})

	Describe("ClearLastRecord", func() {
		It("removes the last-record file", func() {
			record := &dotdir.LastRecord{Kind: dotdir.RecordKindGuide, ID: "to-clear"}
			Expect(m.SaveLastRecord(record, tmpDir)).To(Succeed())

			Expect(m.ClearLastRecord(tmpDir)).To(Succeed())

			loaded, err := m.LoadLastRecord(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeNil())
		})

		It("succeeds when no last-record file exists", func() {
			Expect(m.ClearLastRecord(tmpDir)).To(Succeed())
		})
	})
})
