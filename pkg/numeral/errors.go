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
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("value out of range")
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("malformed numeral")
	// ErrTypeMismatch is matched by every *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnknownSystem is returned when a registry has no system under a name.
	ErrUnknownSystem = errors.New("unknown numeral system")
	// ErrDuplicateSystem is returned when a name is registered twice.
	ErrDuplicateSystem = errors.New("numeral system already registered")
	// ErrInvalidSymbolTable is returned by NewSymbolTable for tables that break its invariants.
	ErrInvalidSymbolTable = errors.New("invalid symbol table")
)

// Bound identifies which end of a system's range was violated.
type Bound string

const (
	BoundMin Bound = "min"
	BoundMax Bound = "max"
)

// RangeError reports a value outside a system's [MinValue, MaxValue].
type RangeError struct {
	System string
	Value  any
	Bound  Bound
	Limit  float64
}

func (e *RangeError) Error() string {
	if e.Bound == BoundMin {
		return fmt.Sprintf("%s: number must be greater or equal to %s, got %v", e.System, formatLimit(e.Limit), e.Value)
	}
	return fmt.Sprintf("%s: number must be less than or equal to %s, got %v", e.System, formatLimit(e.Limit), e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// FormatReason classifies why a representation could not be parsed.
type FormatReason string

const (
	ReasonEmpty        FormatReason = "empty numeral"
	ReasonUnrecognized FormatReason = "unrecognized symbol"
	ReasonOrder        FormatReason = "symbol cannot follow a smaller value"
	ReasonNonCanonical FormatReason = "invalid repetition or subtractive sequence at symbol"
	ReasonRepetition   FormatReason = "symbol repeated too many times"
)

// FormatError reports a representation that cannot be parsed. Position counts runes
// from the start of the normalized input.
type FormatError struct {
	System   string
	Input    string
	Token    string
	Position int
	Reason   FormatReason
	// Expected holds the canonical token for ReasonNonCanonical failures.
	Expected string
}

func (e *FormatError) Error() string {
	if e.Reason == ReasonEmpty {
		return fmt.Sprintf("%s: %s", e.System, e.Reason)
	}
	msg := fmt.Sprintf("%s: invalid numeral %q: %s %q at position %d", e.System, e.Input, e.Reason, e.Token, e.Position)
	if e.Expected != "" {
		msg += fmt.Sprintf(" (expected %q)", e.Expected)
	}
	return msg
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// TypeMismatchError reports an input whose Go type the system cannot accept.
type TypeMismatchError struct {
	System string
	Value  any
	Want   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v of type %T cannot be represented, want %s", e.System, e.Value, e.Value, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// formatLimit prints small bounds as plain integers and huge ones in exponent form.
func formatLimit(v float64) string {
	if math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
