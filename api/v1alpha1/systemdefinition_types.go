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

package v1alpha1

import (
	"errors"
	"fmt"
	"regexp"
)

// Algorithm selects the encode/decode rules a numeral system definition is built on.
type Algorithm string

const (
	// AlgorithmSubtractive is the Roman-style algorithm: greedy encoding over a table that
	// may contain subtractive compounds (e.g. "IX"), strict canonical decoding.
	AlgorithmSubtractive Algorithm = "subtractive"
	// AlgorithmRepetition is the Egyptian-style algorithm: each symbol is repeated up to
	// MaxRepeat times, symbols are summed on decode.
	AlgorithmRepetition Algorithm = "repetition"
)

// DefaultMaxRepeat is the repetition cap applied to repetition systems when MaxRepeat is unset.
const DefaultMaxRepeat = 9

// qualifiedNamePattern matches "<system>.<Variant>", e.g. "roman.Standard".
var qualifiedNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*\.[A-Z][A-Za-z0-9]*$`)

var (
	errNoSymbols        = errors.New("at least one symbol is required")
	errUnknownAlgorithm = errors.New("unknown algorithm")
	errMissingUnit      = errors.New("smallest symbol must have value 1")
)

// SymbolSpec maps a single token of a numeral alphabet to its integer value.
type SymbolSpec struct {
	// Token is the symbol as written. It may span several runes (e.g. "CIↃ").
	Token string `json:"token" yaml:"token"`

	// Value is the integer the token stands for. Must be positive.
	Value int64 `json:"value" yaml:"value"`
}

// SystemDefinition declares a numeral system variant as data: a symbol table, bounds and
// the algorithm that interprets them. Built-in variants and user-supplied definitions
// share this shape.
type SystemDefinition struct {
	// Name is the qualified "<system>.<Variant>" name the variant is registered under.
	Name string `json:"name" yaml:"name"`

	// Algorithm selects subtractive (Roman-style) or repetition (Egyptian-style) rules.
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`

	// Symbols lists the alphabet in strictly decreasing value order.
	// Subtractive compounds (e.g. "CM") are listed as ordinary entries.
	Symbols []SymbolSpec `json:"symbols" yaml:"symbols"`

	// MinValue and MaxValue are the inclusive bounds of representable integers.
	MinValue int64 `json:"minValue" yaml:"minValue"`
	MaxValue int64 `json:"maxValue" yaml:"maxValue"`

	// CaseInsensitive folds input to upper case before decoding.
	// Defaults to true for subtractive systems and false otherwise.
	CaseInsensitive *bool `json:"caseInsensitive,omitempty" yaml:"caseInsensitive,omitempty"`

	// MaxRepeat caps how many times one symbol may occur in a repetition system.
	// Zero means DefaultMaxRepeat. Ignored by subtractive systems.
	MaxRepeat int `json:"maxRepeat,omitempty" yaml:"maxRepeat,omitempty"`
}

// EffectiveMaxRepeat returns MaxRepeat, or DefaultMaxRepeat when it is unset.
func (d *SystemDefinition) EffectiveMaxRepeat() int {
	if d.MaxRepeat <= 0 {
		return DefaultMaxRepeat
	}
	return d.MaxRepeat
}

// Validate checks the structural invariants of a definition: qualified name, known
// algorithm, bounds, and a strictly decreasing alphabet of unique tokens ending in 1.
func (d *SystemDefinition) Validate() error {
	if !qualifiedNamePattern.MatchString(d.Name) {
		return fmt.Errorf("name %q must have the form <system>.<Variant>", d.Name)
	}
	switch d.Algorithm {
	case AlgorithmSubtractive, AlgorithmRepetition:
	default:
		return fmt.Errorf("%s: %w %q", d.Name, errUnknownAlgorithm, d.Algorithm)
	}
	if len(d.Symbols) == 0 {
		return fmt.Errorf("%s: %w", d.Name, errNoSymbols)
	}
	if d.MinValue < 1 {
		return fmt.Errorf("%s: minValue must be >= 1, got %d", d.Name, d.MinValue)
	}
	if d.MaxValue < d.MinValue {
		return fmt.Errorf("%s: maxValue (%d) must be >= minValue (%d)", d.Name, d.MaxValue, d.MinValue)
	}

	seen := make(map[string]struct{}, len(d.Symbols))
	for i, s := range d.Symbols {
		if s.Token == "" {
			return fmt.Errorf("%s: symbol %d has an empty token", d.Name, i)
		}
		if s.Value <= 0 {
			return fmt.Errorf("%s: symbol %q must have a positive value, got %d", d.Name, s.Token, s.Value)
		}
		if _, dup := seen[s.Token]; dup {
			return fmt.Errorf("%s: duplicate symbol %q", d.Name, s.Token)
		}
		seen[s.Token] = struct{}{}
		if i > 0 && s.Value >= d.Symbols[i-1].Value {
			return fmt.Errorf("%s: symbol values must be strictly decreasing, %q (%d) follows %q (%d)",
				d.Name, s.Token, s.Value, d.Symbols[i-1].Token, d.Symbols[i-1].Value)
		}
	}
	if d.Symbols[len(d.Symbols)-1].Value != 1 {
		return fmt.Errorf("%s: %w", d.Name, errMissingUnit)
	}

	if d.Algorithm == AlgorithmRepetition {
		return d.validateRepetition()
	}
	return nil
}

// validateRepetition ensures greedy encoding never needs more than MaxRepeat copies of a symbol.
func (d *SystemDefinition) validateRepetition() error {
	limit := int64(d.EffectiveMaxRepeat())
	for i := 1; i < len(d.Symbols); i++ {
		prev, cur := d.Symbols[i-1], d.Symbols[i]
		if prev.Value > (limit+1)*cur.Value {
			return fmt.Errorf("%s: %q (%d) is more than %d times %q (%d)",
				d.Name, prev.Token, prev.Value, limit+1, cur.Token, cur.Value)
		}
	}
	top := d.Symbols[0]
	if d.MaxValue/top.Value > limit {
		return fmt.Errorf("%s: maxValue %d needs more than %d repetitions of %q",
			d.Name, d.MaxValue, limit, top.Token)
	}
	return nil
}
