package harvest

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalStorage", func() {
	var storage *LocalStorage

	BeforeEach(func() {
		var err error
		storage, err = NewLocalStorage(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("SaveLines and LoadLines", func() {
		It("should round-trip document lines", func() {
			saved, err := storage.SaveLines("doc.txt", []string{"Subtotal $500.00", "Total Due $540.00"})
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(Equal("doc.txt"))

			lines, err := storage.LoadLines("doc.txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"Subtotal $500.00", "Total Due $540.00"}))
		})

		It("should drop blank lines on load", func() {
			_, err := storage.SaveLines("doc.txt", []string{"Total Due $540.00", "", "  "})
			Expect(err).NotTo(HaveOccurred())

			lines, err := storage.LoadLines("doc.txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"Total Due $540.00"}))
		})
	})

	Describe("Delete", func() {
		It("should remove the dump", func() {
			_, err := storage.SaveLines("doc.txt", []string{"x"})
			Expect(err).NotTo(HaveOccurred())
			Expect(storage.Delete("doc.txt")).To(Succeed())

			_, err = storage.LoadLines("doc.txt")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("LoadLines", func() {
		When("the dump does not exist", func() {
			It("should return an error", func() {
				_, err := storage.LoadLines("missing.txt")
				Expect(err).To(HaveOccurred())
			})
		})
	})
})

var _ = Describe("sanitizeFilename", func() {
	It("should strip special characters and swap the extension", func() {
		Expect(sanitizeFilename("/in/Acme: March (final).pdf")).To(Equal("Acme March final.txt"))
	})

	It("should collapse repeated whitespace", func() {
		Expect(sanitizeFilename("a   b.pdf")).To(Equal("a b.txt"))
	})

	It("should fall back to a default name", func() {
		Expect(sanitizeFilename("???.pdf")).To(Equal("document.txt"))
	})
})
