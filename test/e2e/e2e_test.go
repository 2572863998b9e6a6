package e2e

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/numeral-converter/pkg/numeral"
)

const definitions = `
systems:
  - name: tally.Marks
    algorithm: repetition
    symbols:
      - {token: "/", value: 5}
      - {token: "|", value: 1}
    minValue: 1
    maxValue: 20
    maxRepeat: 4
  - name: broken
    algorithm: repetition
    symbols: [{token: "|", value: 1}]
    minValue: 1
    maxValue: 9
`

var _ = Describe("numeral CLI", func() {
	convert := func(from, to, value string) string {
		res := run("convert", "--from", from, "--to", to, value)
		ExpectWithOffset(1, res.err).NotTo(HaveOccurred())
		return strings.TrimSpace(res.stdout)
	}

	Context("built-in systems", func() {
		DescribeTable("converts",
			func(from, to, value, want string) {
				Expect(convert(from, to, value)).To(Equal(want))
			},
			Entry("arabic to standard roman", "arabic.Arabic", "roman.Standard", "1994", "MCMXCIV"),
			Entry("standard roman to arabic", "roman.Standard", "arabic.Arabic", "MCMXCIV", "1994"),
			Entry("early roman", "arabic.Arabic", "roman.Early", "899", "DCCCXCIX"),
			Entry("egyptian", "arabic.Arabic", "egyptian.Egyptian", "21", numeral.HieroglyphTen+numeral.HieroglyphTen+numeral.HieroglyphOne),
			Entry("egyptian to roman", "egyptian.Egyptian", "roman.Standard", numeral.HieroglyphThousand+numeral.HieroglyphOne, "MI"),
		)

		It("round trips standard roman numerals", func() {
			for _, n := range []string{"1", "4", "9", "14", "40", "90", "400", "3888", "3999"} {
				roman := convert("arabic.Arabic", "roman.Standard", n)
				Expect(convert("roman.Standard", "arabic.Arabic", roman)).To(Equal(n))
			}
		})

		It("round trips apostrophus numerals", func() {
			for _, n := range []string{"1", "499", "1000", "5000", "49999", "100000"} {
				repr := convert("arabic.Arabic", "roman.Apostrophus", n)
				Expect(convert("roman.Apostrophus", "arabic.Arabic", repr)).To(Equal(n))
			}
		})

		DescribeTable("rejects",
			func(from, to, value, want string) {
				res := run("convert", "--from", from, "--to", to, value)
				Expect(res.err).To(HaveOccurred())
				Expect(res.err.Error()).To(ContainSubstring(want))
				Expect(res.stdout).To(BeEmpty())
			},
			Entry("zero", "arabic.Arabic", "roman.Standard", "0", "greater or equal to 1"),
			Entry("above maximum", "arabic.Arabic", "roman.Early", "900", "less than or equal to 899"),
			Entry("non canonical", "roman.Standard", "arabic.Arabic", "IIII", "IIII"),
			Entry("unknown system", "arabic.Arabic", "greek.Attic", "1", "unknown numeral system"),
		)
	})

	Context("with a definitions file", func() {
		var path string

		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "systems.yaml")
			Expect(os.WriteFile(path, []byte(definitions), 0o600)).To(Succeed())
		})

		It("registers valid definitions and skips invalid ones", func() {
			res := run("--definitions", path, "systems")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.stdout).To(ContainSubstring("tally.Marks"))
			Expect(res.stdout).NotTo(ContainSubstring("broken"))
		})

		It("converts with the defined system", func() {
			res := run("--definitions", path, "convert", "--from", "roman.Standard", "--to", "tally.Marks", "XIII")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(res.stdout)).To(Equal("//|||"))
		})

		It("reads the definitions path from the environment", func() {
			GinkgoT().Setenv("NUMERAL_DEFINITIONS", path)
			res := run("convert", "--from", "tally.Marks", "--to", "arabic.Arabic", "/|")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(res.stdout)).To(Equal("6"))
		})

		It("fails when the file is missing", func() {
			res := run("--definitions", filepath.Join(filepath.Dir(path), "absent.yaml"), "systems")
			Expect(res.err).To(MatchError(ContainSubstring("loading --definitions")))
		})
	})

	It("prints metrics on request", func() {
		res := run("--metrics", "convert", "--from", "arabic.Arabic", "--to", "roman.Standard", "12")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stderr).To(ContainSubstring(`numeral_conversions_total{result="success",source="arabic.Arabic",target="roman.Standard"} 1`))
	})
})
