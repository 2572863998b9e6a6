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
	"math"
)

const wantWholeNumber = "a whole number"

// number is a numeric input after type checking. f always holds the value; i holds it
// exactly when exact is set.
type number struct {
	f     float64
	i     int64
	exact bool
}

func fromInt64(i int64) number {
	return number{f: float64(i), i: i, exact: true}
}

// numberOf accepts Go integer types and floats without a fractional part.
func numberOf(system string, v any) (number, error) {
	switch n := v.(type) {
	case int:
		return fromInt64(int64(n)), nil
	case int8:
		return fromInt64(int64(n)), nil
	case int16:
		return fromInt64(int64(n)), nil
	case int32:
		return fromInt64(int64(n)), nil
	case int64:
		return fromInt64(n), nil
	case uint:
		return fromUint64(uint64(n)), nil
	case uint8:
		return fromInt64(int64(n)), nil
	case uint16:
		return fromInt64(int64(n)), nil
	case uint32:
		return fromInt64(int64(n)), nil
	case uint64:
		return fromUint64(n), nil
	case float32:
		return fromFloat64(system, v, float64(n))
	case float64:
		return fromFloat64(system, v, n)
	default:
		return number{}, &TypeMismatchError{System: system, Value: v, Want: wantWholeNumber}
	}
}

func fromUint64(u uint64) number {
	if u > math.MaxInt64 {
		return number{f: float64(u)}
	}
	return fromInt64(int64(u))
}

func fromFloat64(system string, v any, f float64) (number, error) {
	if math.IsNaN(f) {
		return number{}, &TypeMismatchError{System: system, Value: v, Want: wantWholeNumber}
	}
	if math.IsInf(f, 0) {
		return number{f: f}, nil
	}
	if f != math.Trunc(f) {
		return number{}, &TypeMismatchError{System: system, Value: v, Want: wantWholeNumber}
	}
	// -2^63 is representable, 2^63 is not.
	if f >= math.MinInt64 && f < -math.MinInt64 {
		return number{f: f, i: int64(f), exact: true}, nil
	}
	return number{f: f}, nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// checkBounds range-checks n against s and converts it to the int64 pivot.
func checkBounds(s System, v any, n number) (int64, error) {
	if n.f < s.MinValue() {
		return 0, &RangeError{System: s.Name(), Value: v, Bound: BoundMin, Limit: s.MinValue()}
	}
	if n.f > s.MaxValue() {
		return 0, &RangeError{System: s.Name(), Value: v, Bound: BoundMax, Limit: s.MaxValue()}
	}
	if !n.exact {
		if n.f < 0 {
			return 0, &RangeError{System: s.Name(), Value: v, Bound: BoundMin, Limit: math.MinInt64}
		}
		return 0, &RangeError{System: s.Name(), Value: v, Bound: BoundMax, Limit: math.MaxInt64}
	}
	return n.i, nil
}

// wholeNumber type-checks v and range-checks it against s.
func wholeNumber(s System, v any) (int64, error) {
	n, err := numberOf(s.Name(), v)
	if err != nil {
		return 0, err
	}
	return checkBounds(s, v, n)
}

// CheckRange reports a *RangeError if pivot lies outside the bounds of s.
func CheckRange(s System, pivot int64) error {
	_, err := checkBounds(s, pivot, fromInt64(pivot))
	return err
}
