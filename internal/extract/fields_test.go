package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InvoiceNumber", func() {
	var (
		lines  []string
		opts   LabelOptions
		number string
	)

	BeforeEach(func() {
		opts = LabelOptions{LookaheadLines: 2}
	})

	JustBeforeEach(func() {
		number = InvoiceNumber(lines, opts)
	})

	When("the identifier follows the label on the same line", func() {
		BeforeEach(func() {
			lines = []string{"Invoice Number: INV-2024-001"}
		})

		It("should return it", func() {
			Expect(number).To(Equal("INV-2024-001"))
		})
	})

	When("the identifier sits below the label", func() {
		BeforeEach(func() {
			lines = []string{"Invoice #", "58213/A"}
		})

		It("should find it within the lookahead window", func() {
			Expect(number).To(Equal("58213/A"))
		})
	})

	When("multi-byte uppercase letters precede the label", func() {
		BeforeEach(func() {
			opts.Anchors = []string{"Invoice"}
			lines = []string{"DİZAYN OFİS BİLİŞİM Invoice NR77"}
		})

		It("should slice after the label, not inside it", func() {
			Expect(number).To(Equal("NR77"))
		})
	})

	When("no label exists", func() {
		BeforeEach(func() {
			lines = []string{"Statement of account", "Ref 12345"}
		})

		It("should return the empty string", func() {
			Expect(number).To(Equal(""))
		})
	})
})

var _ = Describe("InvoiceDate", func() {
	var (
		lines []string
		date  string
	)

	JustBeforeEach(func() {
		date = InvoiceDate(lines, LabelOptions{LookaheadLines: 1})
	})

	When("the date is ISO formatted", func() {
		BeforeEach(func() {
			lines = []string{"Invoice Date: 2024-03-15"}
		})

		It("should keep it as is", func() {
			Expect(date).To(Equal("2024-03-15"))
		})
	})

	When("the date is US slash formatted", func() {
		BeforeEach(func() {
			lines = []string{"Date: 03/15/2024"}
		})

		It("should normalize it to ISO", func() {
			Expect(date).To(Equal("2024-03-15"))
		})
	})

	When("the date is written out", func() {
		BeforeEach(func() {
			lines = []string{"Invoice Date: March 15, 2024"}
		})

		It("should normalize it to ISO", func() {
			Expect(date).To(Equal("2024-03-15"))
		})
	})

	When("no labeled date exists but one appears in the body", func() {
		BeforeEach(func() {
			lines = []string{"Acme Corp", "Issued 2024-07-01 by billing"}
		})

		It("should fall back to a document-wide scan", func() {
			Expect(date).To(Equal("2024-07-01"))
		})
	})

	When("nothing parses as a date", func() {
		BeforeEach(func() {
			lines = []string{"Net 30", "Terms apply"}
		})

		It("should return the empty string", func() {
			Expect(date).To(Equal(""))
		})
	})
})

var _ = Describe("DocumentType", func() {
	It("should classify credit memos", func() {
		Expect(DocumentType([]string{"CREDIT MEMO #881"})).To(Equal("credit_memo"))
	})

	It("should classify credit notes as credit memos", func() {
		Expect(DocumentType([]string{"Credit Note"})).To(Equal("credit_memo"))
	})

	It("should classify quotations", func() {
		Expect(DocumentType([]string{"Quotation for services"})).To(Equal("quote"))
	})

	It("should classify purchase orders", func() {
		Expect(DocumentType([]string{"Purchase Order 9912"})).To(Equal("purchase_order"))
	})

	It("should prefer the specific phrase over plain invoice wording", func() {
		Expect(DocumentType([]string{"Credit memo against invoice 42"})).To(Equal("credit_memo"))
	})

	It("should default to invoice", func() {
		Expect(DocumentType([]string{"Acme Corp", "Total $10.00"})).To(Equal("invoice"))
	})
})
