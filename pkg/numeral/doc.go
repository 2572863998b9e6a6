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

// Package numeral converts integers to and from the representations of historical
// numeral systems.
//
// Every supported system implements the System interface: inclusive bounds plus
// ToNumeral (integer to representation) and FromNumeral (representation to integer).
// Symbolic systems use a string representation, the Arabic system uses int64.
//
// Systems:
//
//   - roman.Early        I..D with subtractive pairs, 1..899
//   - roman.Standard     I..M with subtractive pairs, 1..3999
//   - roman.Apostrophus  additive, CIↃ-style bracket symbols up to 100000
//   - latin.Latin        I..ↀ with subtractive pairs, 1..3999
//   - egyptian.Egyptian  hieroglyphs for powers of ten, 1..1000000
//   - arabic.Arabic      identity on int64, bounded by ±math.MaxFloat64
//
// Each variant is data: a SymbolTable and bounds handed to one of two algorithms,
// subtractive (Roman-style) or repetition (Egyptian-style). NewSystem builds a System
// from a v1alpha1.SystemDefinition, which is how the built-ins are declared too.
//
// Converting between systems goes through an int64 pivot:
//
//	out, err := numeral.Convert("IX", numeral.RomanStandard, numeral.Egyptian)
//	// out == "𓏺𓏺𓏺𓏺𓏺𓏺𓏺𓏺𓏺"
//
// Failures are typed. *RangeError, *FormatError and *TypeMismatchError match ErrRange,
// ErrFormat and ErrTypeMismatch respectively under errors.Is.
//
// Decoding grammar of subtractive systems:
//
//  1. Input is folded with Unicode NFKC (so "Ⅻ" reads as "XII") and, unless the
//     definition opts out, upper-cased.
//  2. Tokens are matched left to right, taking the first table entry, in descending value
//     order, that prefixes the remaining input.
//  3. A token may not be larger than the token before it.
//  4. Every token must be the largest table value not exceeding the sum of itself and all
//     tokens after it. This rejects "IIII" (use "IV"), "VV", "IXI" and friends, and it is
//     exactly the set of strings the greedy encoder produces.
//  5. The sum must lie within the system's bounds.
//
// Repetition systems accept the symbols in any order, at most MaxRepeat (default 9)
// occurrences each.
//
// All systems are immutable and safe for concurrent use.
package numeral
