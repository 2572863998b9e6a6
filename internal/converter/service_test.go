package converter

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	numeralv1alpha1 "github.com/llm-d/numeral-converter/api/v1alpha1"
	"github.com/llm-d/numeral-converter/internal/logging"
	"github.com/llm-d/numeral-converter/internal/metrics"
	"github.com/llm-d/numeral-converter/pkg/numeral"
)

func tallyDefinition() numeralv1alpha1.SystemDefinition {
	return numeralv1alpha1.SystemDefinition{
		Name:      "tally.Marks",
		Algorithm: numeralv1alpha1.AlgorithmRepetition,
		Symbols: []numeralv1alpha1.SymbolSpec{
			{Token: "/", Value: 5},
			{Token: "|", Value: 1},
		},
		MinValue:  1,
		MaxValue:  20,
		MaxRepeat: 4,
	}
}

var _ = Describe("Service", func() {
	var (
		ctx      context.Context
		recorder *metrics.Recorder
		service  *Service
	)

	BeforeEach(func() {
		ctx = logging.IntoContext(context.Background(), logging.Log)
		recorder = metrics.NewRecorder()
		service = NewService(numeral.DefaultRegistry(), recorder)
	})

	countOf := func(source, target, result string) float64 {
		families, err := recorder.Registry().Gather()
		Expect(err).NotTo(HaveOccurred())
		for _, mf := range families {
			if mf.GetName() != metrics.ConversionsTotalName {
				continue
			}
			for _, m := range mf.GetMetric() {
				labels := map[string]string{}
				for _, lp := range m.GetLabel() {
					labels[lp.GetName()] = lp.GetValue()
				}
				if labels["source"] == source && labels["target"] == target && labels["result"] == result {
					return m.GetCounter().GetValue()
				}
			}
		}
		return 0
	}

	It("converts between built-in systems", func() {
		out, err := service.Convert(ctx, int64(1994), numeral.ArabicName, "roman.Standard")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("MCMXCIV"))

		out, err = service.Convert(ctx, "mcmxciv", "roman.Standard", numeral.ArabicName)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(int64(1994)))

		Expect(countOf(numeral.ArabicName, "roman.Standard", metrics.ResultSuccess)).To(Equal(1.0))
		Expect(countOf("roman.Standard", numeral.ArabicName, metrics.ResultSuccess)).To(Equal(1.0))
	})

	It("reports unknown systems", func() {
		_, err := service.Convert(ctx, int64(1), numeral.ArabicName, "klingon.Digits")
		Expect(err).To(MatchError(numeral.ErrUnknownSystem))
		Expect(err.Error()).To(ContainSubstring("target system"))
		Expect(countOf(numeral.ArabicName, "klingon.Digits", metrics.ResultUnknown)).To(Equal(1.0))

		_, err = service.ConvertText(ctx, "1", "klingon.Digits", numeral.ArabicName)
		Expect(err).To(MatchError(numeral.ErrUnknownSystem))
		Expect(err.Error()).To(ContainSubstring("source system"))
	})

	It("records typed failures", func() {
		_, err := service.Convert(ctx, int64(4000), numeral.ArabicName, "roman.Standard")
		var rangeErr *numeral.RangeError
		Expect(err).To(BeAssignableToTypeOf(rangeErr))
		Expect(err).To(MatchError(numeral.ErrRange))

		_, err = service.Convert(ctx, "IIII", "roman.Standard", numeral.ArabicName)
		Expect(err).To(MatchError(numeral.ErrFormat))

		_, err = service.Convert(ctx, 12, "roman.Standard", numeral.ArabicName)
		Expect(err).To(MatchError(numeral.ErrTypeMismatch))

		Expect(countOf(numeral.ArabicName, "roman.Standard", metrics.ResultRangeError)).To(Equal(1.0))
		Expect(countOf("roman.Standard", numeral.ArabicName, metrics.ResultFormatError)).To(Equal(1.0))
		Expect(countOf("roman.Standard", numeral.ArabicName, metrics.ResultTypeMismatch)).To(Equal(1.0))
	})

	It("works without a recorder", func() {
		plain := NewService(numeral.DefaultRegistry(), nil)
		out, err := plain.Convert(ctx, int64(10), numeral.ArabicName, "egyptian.Egyptian")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(numeral.HieroglyphTen))
	})

	DescribeTable("ConvertText",
		func(text, from, to string, want any) {
			out, err := service.ConvertText(ctx, text, from, to)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(want))
		},
		Entry("arabic to roman", "42", numeral.ArabicName, "roman.Standard", "XLII"),
		Entry("padded arabic", " 7 ", numeral.ArabicName, "roman.Early", "VII"),
		Entry("whole float", "12.0", numeral.ArabicName, "roman.Standard", "XII"),
		Entry("roman to arabic", "XLII", "roman.Standard", numeral.ArabicName, int64(42)),
		Entry("roman to egyptian", "XX", "roman.Standard", "egyptian.Egyptian", numeral.HieroglyphTen+numeral.HieroglyphTen),
	)

	DescribeTable("ConvertText errors",
		func(text, from, to string, want error) {
			_, err := service.ConvertText(ctx, text, from, to)
			Expect(err).To(MatchError(want))
		},
		Entry("fraction", "2.5", numeral.ArabicName, "roman.Standard", numeral.ErrTypeMismatch),
		Entry("not a number", "twelve", numeral.ArabicName, "roman.Standard", numeral.ErrTypeMismatch),
		Entry("beyond int64", "1e20", numeral.ArabicName, "roman.Standard", numeral.ErrRange),
		Entry("negative", "-3", numeral.ArabicName, "roman.Standard", numeral.ErrRange),
		Entry("bad numeral", "IIX", "roman.Standard", numeral.ArabicName, numeral.ErrFormat),
	)

	It("lists systems in name order", func() {
		infos := service.Systems()
		names := make([]string, 0, len(infos))
		for _, info := range infos {
			names = append(names, info.Name)
		}
		Expect(names).To(Equal(numeral.DefaultRegistry().Names()))
		Expect(infos[0]).To(Equal(SystemInfo{
			Name:     numeral.ArabicName,
			Kind:     numeral.KindInteger,
			MinValue: numeral.Arabic.MinValue(),
			MaxValue: numeral.Arabic.MaxValue(),
		}))
	})
})

var _ = Describe("NewRegistry", func() {
	It("extends the built-in systems", func() {
		registry, err := NewRegistry(context.Background(), []numeralv1alpha1.SystemDefinition{tallyDefinition()})
		Expect(err).NotTo(HaveOccurred())
		Expect(registry.Names()).To(ContainElements("tally.Marks", "roman.Standard", numeral.ArabicName))

		out, err := NewService(registry, nil).Convert(context.Background(), int64(13), numeral.ArabicName, "tally.Marks")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("//|||"))
	})

	It("rejects a definition that clashes with a built-in", func() {
		def := tallyDefinition()
		def.Name = "roman.Standard"
		_, err := NewRegistry(context.Background(), []numeralv1alpha1.SystemDefinition{def})
		Expect(err).To(MatchError(numeral.ErrDuplicateSystem))
	})

	It("rejects an invalid definition", func() {
		def := tallyDefinition()
		def.MaxValue = 0
		_, err := NewRegistry(context.Background(), []numeralv1alpha1.SystemDefinition{def})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("building system tally.Marks"))
	})
})

var _ = Describe("FormatValue", func() {
	DescribeTable("renders results",
		func(v any, want string) {
			Expect(FormatValue(v)).To(Equal(want))
		},
		Entry("int64", int64(-12), "-12"),
		Entry("float64", 1e20, "100000000000000000000"),
		Entry("string", "MMXXV", "MMXXV"),
	)
})
