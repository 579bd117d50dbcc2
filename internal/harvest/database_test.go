package harvest

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoltDB", func() {
	var (
		tmpDir string
		dbPath string
		db     *BoltDB
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		dbPath = filepath.Join(tmpDir, "test.db")
		var err error
		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Describe("SaveExtraction", func() {
		var (
			extraction *Extraction
			err        error
		)

		BeforeEach(func() {
			extraction = &Extraction{
				ID:            "test-id",
				SourceFile:    "invoices/acme-march.pdf",
				Vendor:        "acme",
				InvoiceNumber: "INV-2024-001",
				InvoiceType:   "invoice",
				InvoiceDate:   "2024-03-15",
				TotalText:     "$540.00",
				TotalValue:    "540.00",
				TotalOutcome:  "total_scored_final",
				LineCount:     42,
				CreatedAt:     time.Now(),
				UpdatedAt:     time.Now(),
			}
		})

		JustBeforeEach(func() {
			err = db.SaveExtraction(extraction)
		})

		When("saving succeeds", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should save the extraction to the database", func() {
				saved, getErr := db.GetExtraction("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(saved.TotalText).To(Equal("$540.00"))
				Expect(saved.Vendor).To(Equal("acme"))
			})
		})
	})

	Describe("GetExtraction", func() {
		When("the extraction does not exist", func() {
			It("should return an error", func() {
				_, err := db.GetExtraction("missing")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("ListExtractions", func() {
		When("the database is empty", func() {
			It("should return an empty list", func() {
				extractions, err := db.ListExtractions()
				Expect(err).NotTo(HaveOccurred())
				Expect(extractions).To(BeEmpty())
			})
		})

		When("extractions exist", func() {
			BeforeEach(func() {
				Expect(db.SaveExtraction(&Extraction{ID: "a", SourceFile: "a.pdf"})).To(Succeed())
				Expect(db.SaveExtraction(&Extraction{ID: "b", SourceFile: "b.pdf"})).To(Succeed())
			})

			It("should return all of them", func() {
				extractions, err := db.ListExtractions()
				Expect(err).NotTo(HaveOccurred())
				Expect(extractions).To(HaveLen(2))
			})
		})
	})

	Describe("DeleteExtraction", func() {
		BeforeEach(func() {
			Expect(db.SaveExtraction(&Extraction{ID: "gone", SourceFile: "gone.pdf"})).To(Succeed())
		})

		It("should remove the extraction", func() {
			Expect(db.DeleteExtraction("gone")).To(Succeed())
			_, err := db.GetExtraction("gone")
			Expect(err).To(HaveOccurred())
		})
	})
})
