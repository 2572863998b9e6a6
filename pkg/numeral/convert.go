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
)

var errNilSystem = errors.New("numeral: source and target systems are required")

// Convert decodes value from source into the integer pivot, checks the pivot against
// target's bounds and encodes it for target. It either returns the complete result or
// an error; nothing is partially converted.
func Convert(value any, source, target System) (any, error) {
	if source == nil || target == nil {
		return nil, errNilSystem
	}
	if err := checkRepresentation(source, value); err != nil {
		return nil, err
	}

	pivot, err := source.FromNumeral(value)
	if err != nil {
		return nil, err
	}
	if err := CheckRange(target, pivot); err != nil {
		return nil, err
	}
	return target.ToNumeral(pivot)
}

// checkRepresentation verifies value has the Go type source represents numbers with.
func checkRepresentation(source System, value any) error {
	switch source.Kind() {
	case KindSymbolic:
		if _, ok := value.(string); !ok {
			return &TypeMismatchError{System: source.Name(), Value: value, Want: "a string numeral"}
		}
	case KindInteger:
		if !isNumber(value) {
			return &TypeMismatchError{System: source.Name(), Value: value, Want: wantWholeNumber}
		}
	}
	return nil
}
