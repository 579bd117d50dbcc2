package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VendorIndex", func() {
	var (
		index  *VendorIndex
		lines  []string
		vendor string
	)

	BeforeEach(func() {
		index = NewVendorIndex(map[string][]string{
			"acme":    {"Acme Corp", "ACME Industries"},
			"globex":  {"Globex"},
			"initech": {"Initech LLC"},
		})
	})

	JustBeforeEach(func() {
		vendor = index.Detect(lines)
	})

	When("an alias appears verbatim", func() {
		BeforeEach(func() {
			lines = []string{"ACME CORP", "123 Main St", "Invoice"}
		})

		It("should return the vendor key", func() {
			Expect(vendor).To(Equal("acme"))
		})
	})

	When("aliases are matched regardless of case", func() {
		BeforeEach(func() {
			lines = []string{"invoice from globex international"}
		})

		It("should still match", func() {
			Expect(vendor).To(Equal("globex"))
		})
	})

	When("two vendors appear", func() {
		BeforeEach(func() {
			lines = []string{
				"Globex",
				"Bill To: Acme Corp",
				"Ship To: Acme Corp warehouse",
			}
		})

		It("should pick the vendor with the most hits", func() {
			Expect(vendor).To(Equal("acme"))
		})
	})

	When("two vendors tie on hits", func() {
		BeforeEach(func() {
			lines = []string{"Globex", "Acme Corp"}
		})

		It("should pick the earlier mention", func() {
			Expect(vendor).To(Equal("globex"))
		})
	})

	When("the banner is slightly mangled", func() {
		BeforeEach(func() {
			lines = []string{"A c m e   C o r p", "Invoice 12"}
		})

		It("should fall back to fuzzy matching", func() {
			Expect(vendor).To(Equal("acme"))
		})
	})

	When("no alias comes close", func() {
		BeforeEach(func() {
			lines = []string{"Wayne Enterprises", "Gotham"}
		})

		It("should report an unknown vendor", func() {
			Expect(vendor).To(Equal(""))
		})
	})

	When("the document is empty", func() {
		BeforeEach(func() {
			lines = nil
		})

		It("should report an unknown vendor", func() {
			Expect(vendor).To(Equal(""))
		})
	})
})
