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
	"strings"
)

// Symbol pairs a token of a numeral alphabet with its value.
type Symbol struct {
	Token string
	Value int64
}

// SymbolTable is an alphabet ordered by strictly decreasing value with unique tokens.
// The zero value is an empty table.
type SymbolTable struct {
	symbols []Symbol
	values  map[string]int64
}

// NewSymbolTable validates symbols and returns them as a table. The input order is kept
// and must already be strictly decreasing by value.
func NewSymbolTable(symbols ...Symbol) (SymbolTable, error) {
	if len(symbols) == 0 {
		return SymbolTable{}, fmt.Errorf("%w: no symbols", ErrInvalidSymbolTable)
	}
	values := make(map[string]int64, len(symbols))
	for i, s := range symbols {
		if s.Token == "" {
			return SymbolTable{}, fmt.Errorf("%w: symbol %d has an empty token", ErrInvalidSymbolTable, i)
		}
		if s.Value <= 0 {
			return SymbolTable{}, fmt.Errorf("%w: symbol %q has non-positive value %d", ErrInvalidSymbolTable, s.Token, s.Value)
		}
		if _, dup := values[s.Token]; dup {
			return SymbolTable{}, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidSymbolTable, s.Token)
		}
		if i > 0 && s.Value >= symbols[i-1].Value {
			return SymbolTable{}, fmt.Errorf("%w: %q (%d) must be smaller than %q (%d)",
				ErrInvalidSymbolTable, s.Token, s.Value, symbols[i-1].Token, symbols[i-1].Value)
		}
		values[s.Token] = s.Value
	}
	return SymbolTable{
		symbols: append([]Symbol(nil), symbols...),
		values:  values,
	}, nil
}

// Len returns the number of symbols.
func (t SymbolTable) Len() int { return len(t.symbols) }

// Symbols returns a copy of the table in descending value order.
func (t SymbolTable) Symbols() []Symbol {
	return append([]Symbol(nil), t.symbols...)
}

// Value returns the value of token.
func (t SymbolTable) Value(token string) (int64, bool) {
	v, ok := t.values[token]
	return v, ok
}

// Largest returns the highest-valued symbol.
func (t SymbolTable) Largest() Symbol {
	if len(t.symbols) == 0 {
		return Symbol{}
	}
	return t.symbols[0]
}

// match returns the first symbol, in descending value order, that prefixes s.
func (t SymbolTable) match(s string) (Symbol, bool) {
	for _, sym := range t.symbols {
		if strings.HasPrefix(s, sym.Token) {
			return sym, true
		}
	}
	return Symbol{}, false
}

// largestAtMost returns the highest-valued symbol not exceeding n.
func (t SymbolTable) largestAtMost(n int64) (Symbol, bool) {
	for _, sym := range t.symbols {
		if sym.Value <= n {
			return sym, true
		}
	}
	return Symbol{}, false
}

// shadowing reports a pair of symbols that breaks left-to-right tokenization of
// greedy output: hi has a higher value than lo and prefixes lo followed by some
// non-increasing run of symbols worth at most lo each. Decoding such output would
// read hi where the encoder wrote lo.
func (t SymbolTable) shadowing() (hi, lo Symbol, found bool) {
	for j, low := range t.symbols {
		for _, high := range t.symbols[:j] {
			switch {
			case strings.HasPrefix(low.Token, high.Token):
				return high, low, true
			case strings.HasPrefix(high.Token, low.Token) &&
				t.spells(high.Token[len(low.Token):], low.Value):
				return high, low, true
			}
		}
	}
	return Symbol{}, Symbol{}, false
}

// spells reports whether a non-increasing run of symbols, each worth at most limit,
// can produce text starting with want.
func (t SymbolTable) spells(want string, limit int64) bool {
	if want == "" {
		return true
	}
	for _, sym := range t.symbols {
		if sym.Value > limit {
			continue
		}
		if strings.HasPrefix(sym.Token, want) {
			return true
		}
		if strings.HasPrefix(want, sym.Token) && t.spells(want[len(sym.Token):], sym.Value) {
			return true
		}
	}
	return false
}
