package extract

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseAmount", func() {
	var (
		input string
		value float64
	)

	JustBeforeEach(func() {
		value = ParseAmount(input)
	})

	When("parsing a plain amount", func() {
		BeforeEach(func() {
			input = "540.00"
		})

		It("should return the numeric value", func() {
			Expect(value).To(Equal(540.00))
		})
	})

	When("parsing a currency amount with thousands separators", func() {
		BeforeEach(func() {
			input = "$1,234.56"
		})

		It("should strip the symbol and commas", func() {
			Expect(value).To(Equal(1234.56))
		})
	})

	When("parsing a parenthesized amount", func() {
		BeforeEach(func() {
			input = "($1,234.56)"
		})

		It("should treat it as negative", func() {
			Expect(value).To(Equal(-1234.56))
		})
	})

	When("parsing a negative amount inside parentheses", func() {
		BeforeEach(func() {
			input = "(-5.00)"
		})

		It("should double-negate to a positive value", func() {
			Expect(value).To(Equal(5.00))
		})
	})

	When("parsing a bare negative amount", func() {
		BeforeEach(func() {
			input = "-75.25"
		})

		It("should keep the sign", func() {
			Expect(value).To(Equal(-75.25))
		})
	})

	When("parsing text that is not an amount", func() {
		BeforeEach(func() {
			input = "N/A"
		})

		It("should return NaN", func() {
			Expect(math.IsNaN(value)).To(BeTrue())
		})
	})

	When("parsing the empty string", func() {
		BeforeEach(func() {
			input = ""
		})

		It("should return NaN", func() {
			Expect(math.IsNaN(value)).To(BeTrue())
		})
	})
})

var _ = Describe("NewPhraseSet", func() {
	It("should match case-insensitively", func() {
		set := NewPhraseSet([]string{"Total Due"})
		Expect(set.Matches("amount TOTAL DUE now")).To(BeTrue())
	})

	It("should drop blank entries", func() {
		set := NewPhraseSet([]string{"", "   "})
		Expect(set.Empty()).To(BeTrue())
	})

	It("should match by substring", func() {
		set := NewPhraseSet([]string{"subtotal"})
		Expect(set.Matches("Running Subtotals")).To(BeTrue())
	})
})
