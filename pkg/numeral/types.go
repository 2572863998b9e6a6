/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package numeral

// Kind describes the Go type a system uses for its representation.
type Kind int

const (
	// KindSymbolic systems represent numbers as strings of symbols.
	KindSymbolic Kind = iota
	// KindInteger systems represent numbers as int64.
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindSymbolic:
		return "symbolic"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// System is a numeral system variant.
type System interface {
	// Name returns the qualified "<system>.<Variant>" name, e.g. "roman.Standard".
	Name() string

	// Kind reports whether representations are strings or integers.
	Kind() Kind

	// MinValue and MaxValue are the inclusive bounds of representable integers.
	MinValue() float64
	MaxValue() float64

	// ToNumeral encodes a whole number into this system's representation.
	// n may be any Go integer type or a float without a fractional part.
	ToNumeral(n any) (any, error)

	// FromNumeral decodes a representation of this system into the integer pivot.
	FromNumeral(repr any) (int64, error)
}

// SymbolSystem is implemented by systems backed by a SymbolTable.
type SymbolSystem interface {
	System

	// Table returns the system's alphabet in descending value order.
	Table() SymbolTable
}
