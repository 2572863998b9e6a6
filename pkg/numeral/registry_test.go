package numeral

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	It("should list every built-in system by qualified name", func() {
		systems := ListSystems()
		Expect(systems).To(HaveLen(6))
		Expect(systems).To(HaveKeyWithValue("roman.Standard", RomanStandard))
		Expect(systems).To(HaveKeyWithValue("roman.Early", RomanEarly))
		Expect(systems).To(HaveKeyWithValue("roman.Apostrophus", RomanApostrophus))
		Expect(systems).To(HaveKeyWithValue("latin.Latin", Latin))
		Expect(systems).To(HaveKeyWithValue("egyptian.Egyptian", Egyptian))
		Expect(systems).To(HaveKeyWithValue("arabic.Arabic", Arabic))
	})

	It("should return a copy from ListSystems", func() {
		systems := ListSystems()
		delete(systems, "roman.Standard")
		Expect(ListSystems()).To(HaveKey("roman.Standard"))
	})

	Context("Default", func() {
		var registry *Registry

		BeforeEach(func() {
			registry = DefaultRegistry()
		})

		It("should look up systems by name", func() {
			s, err := registry.Lookup("egyptian.Egyptian")
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(Egyptian))
		})

		It("should fail for unknown names", func() {
			_, err := registry.Lookup("mayan.Classic")
			Expect(err).To(MatchError(ErrUnknownSystem))
		})

		It("should return sorted names", func() {
			Expect(registry.Names()).To(Equal([]string{
				"arabic.Arabic",
				"egyptian.Egyptian",
				"latin.Latin",
				"roman.Apostrophus",
				"roman.Early",
				"roman.Standard",
			}))
		})

		It("should reject duplicate registrations", func() {
			Expect(registry.Register(RomanStandard)).To(MatchError(ErrDuplicateSystem))
		})

		It("should not leak registrations into other registries", func() {
			custom := MustNewSystem(tallyDefinition())
			Expect(registry.Register(custom)).To(Succeed())
			Expect(registry.Names()).To(ContainElement("tally.Marks"))
			Expect(DefaultRegistry().Names()).NotTo(ContainElement("tally.Marks"))
			Expect(ListSystems()).NotTo(HaveKey("tally.Marks"))
		})

		It("should reject nil systems", func() {
			Expect(registry.Register(nil)).To(HaveOccurred())
		})
	})

	It("should build a registry from explicit systems", func() {
		r, err := NewRegistry(Arabic, RomanEarly)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Systems()).To(HaveLen(2))

		_, err = NewRegistry(Arabic, Arabic)
		Expect(err).To(MatchError(ErrDuplicateSystem))
	})
})
