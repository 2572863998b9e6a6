package numeral

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Convert", func() {
	Context("between symbolic and integer systems", func() {
		It("should convert Roman IX to nine Egyptian strokes", func() {
			out, err := Convert("IX", RomanStandard, Egyptian)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(strings.Repeat(HieroglyphOne, 9)))
		})

		It("should read apostrophus notation into an integer", func() {
			out, err := Convert("IↃI", RomanApostrophus, Arabic)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(int64(501)))
		})

		It("should write an integer in early Roman numerals", func() {
			out, err := Convert(42, Arabic, RomanEarly)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("XLII"))
		})

		It("should convert a system to itself", func() {
			out, err := Convert("x", RomanStandard, RomanStandard)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("X"))
		})

		It("should convert Latin to Standard Roman", func() {
			out, err := Convert("ↀCↀXCIV", Latin, RomanStandard)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("MCMXCIV"))
		})
	})

	Context("when the pivot does not fit the target", func() {
		It("should name the violated upper bound", func() {
			_, err := Convert(4000, Arabic, RomanStandard)
			Expect(err).To(MatchError(ErrRange))
			Expect(err.Error()).To(ContainSubstring("less than or equal to 3999"))

			var rangeErr *RangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.System).To(Equal("roman.Standard"))
			Expect(rangeErr.Bound).To(Equal(BoundMax))
		})

		It("should name the violated lower bound", func() {
			_, err := Convert(0, Arabic, Egyptian)
			Expect(err).To(MatchError(ErrRange))
			Expect(err.Error()).To(ContainSubstring("greater or equal to 1"))
		})

		It("should report the target system, not the source", func() {
			_, err := Convert("MMM", RomanStandard, RomanEarly)
			var rangeErr *RangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.System).To(Equal("roman.Early"))
			Expect(rangeErr.Limit).To(Equal(float64(899)))
		})
	})

	Context("with input of the wrong type", func() {
		It("should reject an integer for a symbolic source", func() {
			_, err := Convert(42, RomanStandard, Egyptian)
			Expect(err).To(MatchError(ErrTypeMismatch))
		})

		It("should reject a string for the Arabic source", func() {
			_, err := Convert("42", Arabic, RomanStandard)
			Expect(err).To(MatchError(ErrTypeMismatch))
		})

		It("should reject a fractional number", func() {
			_, err := Convert(1.5, Arabic, RomanStandard)
			Expect(err).To(MatchError(ErrTypeMismatch))
		})
	})

	Context("with malformed input", func() {
		It("should propagate the format error", func() {
			_, err := Convert("IIII", RomanStandard, Arabic)
			Expect(err).To(MatchError(ErrFormat))
		})
	})

	It("should require both systems", func() {
		_, err := Convert("X", nil, Arabic)
		Expect(err).To(HaveOccurred())
		_, err = Convert("X", RomanStandard, nil)
		Expect(err).To(HaveOccurred())
	})
})
