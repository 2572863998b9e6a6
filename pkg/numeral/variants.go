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

import (
	numeralv1alpha1 "github.com/llm-d/numeral-converter/api/v1alpha1"
)

// Egyptian hieroglyphs for the powers of ten.
const (
	HieroglyphOne      = "\U000133FA" // stroke
	HieroglyphTen      = "\U00013386" // heel bone
	HieroglyphHundred  = "\U00013362" // coil of rope
	HieroglyphThousand = "\U000131BC" // lotus
	HieroglyphTenK     = "\U000130AD" // finger
	HieroglyphHundredK = "\U00013153" // tadpole
	HieroglyphMillion  = "\U00013069" // Heh
)

// Definitions of the built-in variants. Each is one of the two algorithms applied to
// its own alphabet and bounds.
var (
	RomanEarlyDefinition = numeralv1alpha1.SystemDefinition{
		Name:      "roman.Early",
		Algorithm: numeralv1alpha1.AlgorithmSubtractive,
		Symbols: []numeralv1alpha1.SymbolSpec{
			{Token: "D", Value: 500},
			{Token: "CD", Value: 400},
			{Token: "C", Value: 100},
			{Token: "XC", Value: 90},
			{Token: "L", Value: 50},
			{Token: "XL", Value: 40},
			{Token: "X", Value: 10},
			{Token: "IX", Value: 9},
			{Token: "V", Value: 5},
			{Token: "IV", Value: 4},
			{Token: "I", Value: 1},
		},
		MinValue: 1,
		MaxValue: 899,
	}

	RomanStandardDefinition = numeralv1alpha1.SystemDefinition{
		Name:      "roman.Standard",
		Algorithm: numeralv1alpha1.AlgorithmSubtractive,
		Symbols: []numeralv1alpha1.SymbolSpec{
			{Token: "M", Value: 1_000},
			{Token: "CM", Value: 900},
			{Token: "D", Value: 500},
			{Token: "CD", Value: 400},
			{Token: "C", Value: 100},
			{Token: "XC", Value: 90},
			{Token: "L", Value: 50},
			{Token: "XL", Value: 40},
			{Token: "X", Value: 10},
			{Token: "IX", Value: 9},
			{Token: "V", Value: 5},
			{Token: "IV", Value: 4},
			{Token: "I", Value: 1},
		},
		MinValue: 1,
		MaxValue: 3_999,
	}

	// RomanApostrophusDefinition writes thousands with the apostrophus (Ↄ) bracket
	// notation and uses no subtractive pairs, so 4 is "IIII".
	RomanApostrophusDefinition = numeralv1alpha1.SystemDefinition{
		Name:      "roman.Apostrophus",
		Algorithm: numeralv1alpha1.AlgorithmSubtractive,
		Symbols: []numeralv1alpha1.SymbolSpec{
			{Token: "CCCIↃↃↃ", Value: 100_000},
			{Token: "IↃↃↃ", Value: 50_000},
			{Token: "CCIↃↃ", Value: 10_000},
			{Token: "IↃↃ", Value: 5_000},
			{Token: "CIↃ", Value: 1_000},
			{Token: "IↃ", Value: 500},
			{Token: "C", Value: 100},
			{Token: "L", Value: 50},
			{Token: "X", Value: 10},
			{Token: "V", Value: 5},
			{Token: "I", Value: 1},
		},
		MinValue: 1,
		MaxValue: 100_000,
	}

	// LatinDefinition is the Standard table with ↀ in place of M.
	LatinDefinition = numeralv1alpha1.SystemDefinition{
		Name:      "latin.Latin",
		Algorithm: numeralv1alpha1.AlgorithmSubtractive,
		Symbols: []numeralv1alpha1.SymbolSpec{
			{Token: "ↀ", Value: 1_000},
			{Token: "Cↀ", Value: 900},
			{Token: "D", Value: 500},
			{Token: "CD", Value: 400},
			{Token: "C", Value: 100},
			{Token: "XC", Value: 90},
			{Token: "L", Value: 50},
			{Token: "XL", Value: 40},
			{Token: "X", Value: 10},
			{Token: "IX", Value: 9},
			{Token: "V", Value: 5},
			{Token: "IV", Value: 4},
			{Token: "I", Value: 1},
		},
		MinValue: 1,
		MaxValue: 3_999,
	}

	EgyptianDefinition = numeralv1alpha1.SystemDefinition{
		Name:      "egyptian.Egyptian",
		Algorithm: numeralv1alpha1.AlgorithmRepetition,
		Symbols: []numeralv1alpha1.SymbolSpec{
			{Token: HieroglyphMillion, Value: 1_000_000},
			{Token: HieroglyphHundredK, Value: 100_000},
			{Token: HieroglyphTenK, Value: 10_000},
			{Token: HieroglyphThousand, Value: 1_000},
			{Token: HieroglyphHundred, Value: 100},
			{Token: HieroglyphTen, Value: 10},
			{Token: HieroglyphOne, Value: 1},
		},
		MinValue:  1,
		MaxValue:  1_000_000,
		MaxRepeat: numeralv1alpha1.DefaultMaxRepeat,
	}
)

// Built-in systems.
var (
	RomanEarly       = MustNewSystem(RomanEarlyDefinition)
	RomanStandard    = MustNewSystem(RomanStandardDefinition)
	RomanApostrophus = MustNewSystem(RomanApostrophusDefinition)
	Latin            = MustNewSystem(LatinDefinition)
	Egyptian         = MustNewSystem(EgyptianDefinition)
)

// Arabic is the integer identity system.
var Arabic System = arabicSystem{}

// builtins is the static registration table behind ListSystems and Default.
var builtins = []System{
	Arabic,
	Egyptian,
	Latin,
	RomanApostrophus,
	RomanEarly,
	RomanStandard,
}
