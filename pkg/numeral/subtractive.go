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
	"strings"
	"unicode/utf8"
)

// symbolic holds what the two symbol-based algorithms share.
type symbolic struct {
	name     string
	table    SymbolTable
	min, max int64
	fold     foldFunc
}

func (s *symbolic) Name() string      { return s.name }
func (s *symbolic) Kind() Kind        { return KindSymbolic }
func (s *symbolic) MinValue() float64 { return float64(s.min) }
func (s *symbolic) MaxValue() float64 { return float64(s.max) }

// Table returns the system's alphabet.
func (s *symbolic) Table() SymbolTable { return s.table }

func (s *symbolic) String() string { return s.name }

// token is a matched symbol and its rune offset in the normalized input.
type token struct {
	Symbol
	pos int
}

func (s *symbolic) input(repr any) (string, error) {
	str, ok := repr.(string)
	if !ok {
		return "", &TypeMismatchError{System: s.name, Value: repr, Want: "a string numeral"}
	}
	text := s.fold(str)
	if text == "" {
		return "", &FormatError{System: s.name, Input: str, Reason: ReasonEmpty}
	}
	return text, nil
}

// tokenize splits text into table symbols, left to right.
func (s *symbolic) tokenize(text string) ([]token, error) {
	var tokens []token
	pos := 0
	for rest := text; rest != ""; {
		sym, ok := s.table.match(rest)
		if !ok {
			r, _ := utf8.DecodeRuneInString(rest)
			return nil, &FormatError{System: s.name, Input: text, Token: string(r), Position: pos, Reason: ReasonUnrecognized}
		}
		tokens = append(tokens, token{Symbol: sym, pos: pos})
		rest = rest[len(sym.Token):]
		pos += utf8.RuneCountInString(sym.Token)
	}
	return tokens, nil
}

// subtractiveSystem is the Roman-style algorithm.
type subtractiveSystem struct {
	symbolic
}

func (s *subtractiveSystem) ToNumeral(n any) (any, error) {
	pivot, err := wholeNumber(s, n)
	if err != nil {
		return nil, err
	}
	return s.encode(pivot), nil
}

// encode writes n greedily; the caller guarantees n is within bounds.
func (s *subtractiveSystem) encode(n int64) string {
	var b strings.Builder
	for _, sym := range s.table.symbols {
		for n >= sym.Value {
			b.WriteString(sym.Token)
			n -= sym.Value
		}
	}
	return b.String()
}

func (s *subtractiveSystem) FromNumeral(repr any) (int64, error) {
	text, err := s.input(repr)
	if err != nil {
		return 0, err
	}
	total, err := s.decode(text)
	if err != nil {
		return 0, err
	}
	if err := CheckRange(s, total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *subtractiveSystem) decode(text string) (int64, error) {
	tokens, err := s.tokenize(text)
	if err != nil {
		return 0, err
	}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].Value > tokens[i-1].Value {
			return 0, &FormatError{System: s.name, Input: text, Token: tokens[i].Token, Position: tokens[i].pos, Reason: ReasonOrder}
		}
	}

	// Only the greedy choice for each suffix sum is canonical.
	var suffix int64
	for i := len(tokens) - 1; i >= 0; i-- {
		suffix += tokens[i].Value
		best, _ := s.table.largestAtMost(suffix)
		if best.Value != tokens[i].Value {
			return 0, &FormatError{
				System:   s.name,
				Input:    text,
				Token:    tokens[i].Token,
				Position: tokens[i].pos,
				Reason:   ReasonNonCanonical,
				Expected: best.Token,
			}
		}
	}
	return suffix, nil
}
