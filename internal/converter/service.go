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

// Package converter wires the numeral registry, logging and metrics into the
// conversion operation used by the CLI.
package converter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	numeralv1alpha1 "github.com/llm-d/numeral-converter/api/v1alpha1"
	"github.com/llm-d/numeral-converter/internal/logging"
	"github.com/llm-d/numeral-converter/internal/metrics"
	"github.com/llm-d/numeral-converter/pkg/numeral"
)

// SystemInfo describes a registered system for listing.
type SystemInfo struct {
	Name     string
	Kind     numeral.Kind
	MinValue float64
	MaxValue float64
}

// Service converts between systems registered in a Registry.
type Service struct {
	registry *numeral.Registry
	recorder *metrics.Recorder
}

// NewService returns a Service. recorder may be nil.
func NewService(registry *numeral.Registry, recorder *metrics.Recorder) *Service {
	return &Service{registry: registry, recorder: recorder}
}

// NewRegistry returns the built-in registry extended with the given definitions.
// A definition that cannot be built or clashes with a registered name is an error.
func NewRegistry(ctx context.Context, defs []numeralv1alpha1.SystemDefinition) (*numeral.Registry, error) {
	logger := logging.FromContext(ctx)
	registry := numeral.DefaultRegistry()
	for _, def := range defs {
		s, err := numeral.NewSystem(def)
		if err != nil {
			return nil, fmt.Errorf("building system %s: %w", def.Name, err)
		}
		if err := registry.Register(s); err != nil {
			return nil, fmt.Errorf("registering system %s: %w", def.Name, err)
		}
		logger.V(logging.DEBUG).Info("Registered system", "name", s.Name(), "min", s.MinValue(), "max", s.MaxValue())
	}
	return registry, nil
}

// Convert converts value from the system named from into the system named to.
func (s *Service) Convert(ctx context.Context, value any, from, to string) (any, error) {
	logger := logging.FromContext(ctx).WithValues("source", from, "target", to)

	result, err := s.convert(value, from, to)
	s.recorder.ObserveConversion(from, to, err)
	if err != nil {
		logger.V(logging.DEBUG).Info("Conversion failed", "value", value, "result", metrics.ResultLabel(err), "error", err.Error())
		return nil, err
	}
	if text, ok := value.(string); ok {
		s.recorder.ObserveInputLength(from, utf8.RuneCountInString(text))
	}
	logger.V(logging.TRACE).Info("Converted", "value", value, "output", result)
	return result, nil
}

func (s *Service) convert(value any, from, to string) (any, error) {
	source, err := s.registry.Lookup(from)
	if err != nil {
		return nil, fmt.Errorf("source system: %w", err)
	}
	target, err := s.registry.Lookup(to)
	if err != nil {
		return nil, fmt.Errorf("target system: %w", err)
	}
	return numeral.Convert(value, source, target)
}

// ConvertText parses text as the input representation of the source system and converts it.
func (s *Service) ConvertText(ctx context.Context, text, from, to string) (any, error) {
	source, err := s.registry.Lookup(from)
	if err != nil {
		s.recorder.ObserveConversion(from, to, err)
		return nil, fmt.Errorf("source system: %w", err)
	}
	return s.Convert(ctx, ParseInput(text, source), from, to)
}

// ParseInput turns command-line text into the representation system expects.
// Integer systems get an int64, or a float64 when the text is not a valid int64,
// so out-of-range and fractional inputs surface as typed conversion errors.
// Text that is not a number is returned unchanged.
func ParseInput(text string, system numeral.System) any {
	if system.Kind() != numeral.KindInteger {
		return text
	}
	trimmed := strings.TrimSpace(text)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return text
}

// Systems lists the registered systems ordered by name.
func (s *Service) Systems() []SystemInfo {
	all := s.registry.Systems()
	names := s.registry.Names()
	out := make([]SystemInfo, 0, len(names))
	for _, name := range names {
		sys, ok := all[name]
		if !ok {
			continue
		}
		out = append(out, SystemInfo{
			Name:     sys.Name(),
			Kind:     sys.Kind(),
			MinValue: sys.MinValue(),
			MaxValue: sys.MaxValue(),
		})
	}
	return out
}

// FormatValue renders a conversion result for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
