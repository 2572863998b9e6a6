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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// foldFunc normalizes raw input before tokenizing.
type foldFunc func(string) string

// foldCompat maps compatibility forms onto their plain letters, e.g. "Ⅻ" to "XII".
func foldCompat(s string) string {
	return norm.NFKC.String(s)
}

// foldUpper applies foldCompat and upper-cases the result.
// A Caser is stateful, so one is created per call.
func foldUpper(s string) string {
	return cases.Upper(language.Und).String(norm.NFKC.String(s))
}

// isFoldStable reports whether token survives fold unchanged; a token that does not
// could never be matched.
func isFoldStable(token string, fold foldFunc) bool {
	return fold(token) == token
}
