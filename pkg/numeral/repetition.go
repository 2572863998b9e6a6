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
)

// repetitionSystem is the Egyptian-style algorithm: no subtractive notation, each
// symbol written up to maxRepeat times.
type repetitionSystem struct {
	symbolic
	maxRepeat int
}

func (s *repetitionSystem) ToNumeral(n any) (any, error) {
	pivot, err := wholeNumber(s, n)
	if err != nil {
		return nil, err
	}
	return s.encode(pivot), nil
}

// encode writes the count of each symbol, most significant first.
func (s *repetitionSystem) encode(n int64) string {
	var b strings.Builder
	for _, sym := range s.table.symbols {
		count := n / sym.Value
		n %= sym.Value
		b.WriteString(strings.Repeat(sym.Token, int(count)))
	}
	return b.String()
}

func (s *repetitionSystem) FromNumeral(repr any) (int64, error) {
	text, err := s.input(repr)
	if err != nil {
		return 0, err
	}
	tokens, err := s.tokenize(text)
	if err != nil {
		return 0, err
	}

	counts := make(map[string]int, s.table.Len())
	var total int64
	for _, tok := range tokens {
		counts[tok.Token]++
		if counts[tok.Token] > s.maxRepeat {
			return 0, &FormatError{System: s.name, Input: text, Token: tok.Token, Position: tok.pos, Reason: ReasonRepetition}
		}
		total += tok.Value
	}
	if err := CheckRange(s, total); err != nil {
		return 0, err
	}
	return total, nil
}
