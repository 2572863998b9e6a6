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

// Package metrics records conversion outcomes as Prometheus metrics.
//
// Each Recorder owns its own registry so that embedding programs and tests never
// collide on the global default registerer.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/llm-d/numeral-converter/pkg/numeral"
)

// Metric names.
const (
	ConversionsTotalName = "numeral_conversions_total"
	InputSymbolsName     = "numeral_conversion_input_symbols"
)

// Result label values.
const (
	ResultSuccess      = "success"
	ResultRangeError   = "range_error"
	ResultFormatError  = "format_error"
	ResultTypeMismatch = "type_mismatch"
	ResultUnknown      = "unknown_system"
	ResultError        = "error"
)

// Recorder holds the conversion metrics.
type Recorder struct {
	registry     *prometheus.Registry
	conversions  *prometheus.CounterVec
	inputSymbols *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ConversionsTotalName,
			Help: "Number of conversions by source system, target system and result.",
		}, []string{"source", "target", "result"}),
		inputSymbols: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    InputSymbolsName,
			Help:    "Length in runes of symbolic numerals decoded by a conversion.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}, []string{"source"}),
	}
	r.registry.MustRegister(r.conversions, r.inputSymbols)
	return r
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveConversion counts one conversion. A nil Recorder is a no-op.
func (r *Recorder) ObserveConversion(source, target string, err error) {
	if r == nil {
		return
	}
	r.conversions.WithLabelValues(source, target, ResultLabel(err)).Inc()
}

// ObserveInputLength records the symbol count of a decoded numeral.
func (r *Recorder) ObserveInputLength(source string, symbols int) {
	if r == nil {
		return
	}
	r.inputSymbols.WithLabelValues(source).Observe(float64(symbols))
}

// ResultLabel classifies err into a result label value.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, numeral.ErrRange):
		return ResultRangeError
	case errors.Is(err, numeral.ErrFormat):
		return ResultFormatError
	case errors.Is(err, numeral.ErrTypeMismatch):
		return ResultTypeMismatch
	case errors.Is(err, numeral.ErrUnknownSystem):
		return ResultUnknown
	default:
		return ResultError
	}
}

// WriteText writes all gathered metric families to w in the Prometheus text format,
// ordered by name.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
