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
	"fmt"

	"k8s.io/utils/ptr"

	numeralv1alpha1 "github.com/llm-d/numeral-converter/api/v1alpha1"
)

// NewSystem is a factory that builds a System from a definition, choosing the
// algorithm named by def.Algorithm.
func NewSystem(def numeralv1alpha1.SystemDefinition) (System, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid system definition: %w", err)
	}

	symbols := make([]Symbol, 0, len(def.Symbols))
	for _, s := range def.Symbols {
		symbols = append(symbols, Symbol{Token: s.Token, Value: s.Value})
	}
	table, err := NewSymbolTable(symbols...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", def.Name, err)
	}
	if hi, lo, found := table.shadowing(); found {
		return nil, fmt.Errorf("%s: %w: %q can be read where %q was written, encoded numerals would not decode back",
			def.Name, ErrInvalidSymbolTable, hi.Token, lo.Token)
	}

	fold := foldFunc(foldCompat)
	if ptr.Deref(def.CaseInsensitive, def.Algorithm == numeralv1alpha1.AlgorithmSubtractive) {
		fold = foldUpper
	}
	for _, s := range symbols {
		if !isFoldStable(s.Token, fold) {
			return nil, fmt.Errorf("%s: symbol %q is not in normalized form and could never be matched", def.Name, s.Token)
		}
	}

	base := symbolic{
		name:  def.Name,
		table: table,
		min:   def.MinValue,
		max:   def.MaxValue,
		fold:  fold,
	}

	switch def.Algorithm {
	case numeralv1alpha1.AlgorithmSubtractive:
		return &subtractiveSystem{symbolic: base}, nil
	case numeralv1alpha1.AlgorithmRepetition:
		return &repetitionSystem{symbolic: base, maxRepeat: def.EffectiveMaxRepeat()}, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm: %v", def.Algorithm)
	}
}

// MustNewSystem is like NewSystem but panics on an invalid definition.
// It is meant for package-level declarations.
func MustNewSystem(def numeralv1alpha1.SystemDefinition) System {
	s, err := NewSystem(def)
	if err != nil {
		panic(err)
	}
	return s
}
