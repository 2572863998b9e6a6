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

// ArabicName is the registry name of the Arabic system.
const ArabicName = "arabic.Arabic"

// arabicSystem is the identity system and the natural pivot. Its bounds are the largest
// float magnitudes; values that fit those bounds but not int64 are rejected as out of
// range when converted to the pivot.
type arabicSystem struct{}

func (arabicSystem) Name() string      { return ArabicName }
func (arabicSystem) Kind() Kind        { return KindInteger }
func (arabicSystem) MinValue() float64 { return -math.MaxFloat64 }
func (arabicSystem) MaxValue() float64 { return math.MaxFloat64 }
func (arabicSystem) String() string    { return ArabicName }

func (a arabicSystem) ToNumeral(n any) (any, error) {
	pivot, err := wholeNumber(a, n)
	if err != nil {
		return nil, err
	}
	return pivot, nil
}

func (a arabicSystem) FromNumeral(repr any) (int64, error) {
	if !isNumber(repr) {
		return 0, &TypeMismatchError{System: ArabicName, Value: repr, Want: wantWholeNumber}
	}
	return wholeNumber(a, repr)
}
