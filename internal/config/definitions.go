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

package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	numeralv1alpha1 "github.com/llm-d/numeral-converter/api/v1alpha1"
	"github.com/llm-d/numeral-converter/internal/logging"
)

// DefinitionsFile is the on-disk format for user-defined numeral systems:
//
//	systems:
//	  - name: tally.Marks
//	    algorithm: repetition
//	    symbols:
//	      - {token: "/", value: 5}
//	      - {token: "|", value: 1}
//	    minValue: 1
//	    maxValue: 20
//	    maxRepeat: 4
type DefinitionsFile struct {
	Systems []numeralv1alpha1.SystemDefinition `yaml:"systems" json:"systems"`
}

// ParseSystemDefinitions parses a definitions document. Entries that fail validation
// are logged and skipped; when two entries share a name the first one wins.
// An error is returned only if the document itself cannot be decoded.
func ParseSystemDefinitions(ctx context.Context, data []byte) ([]numeralv1alpha1.SystemDefinition, error) {
	logger := logging.FromContext(ctx)

	var file DefinitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing system definitions: %w", err)
	}

	out := make([]numeralv1alpha1.SystemDefinition, 0, len(file.Systems))
	nameToIndex := make(map[string]int)

	for i, def := range file.Systems {
		if err := def.Validate(); err != nil {
			logger.Info("Invalid system definition, skipping",
				"index", i,
				"name", def.Name,
				"error", err.Error())
			continue
		}

		if first, exists := nameToIndex[def.Name]; exists {
			logger.Info("Duplicate system name in definitions - first entry wins",
				"name", def.Name,
				"winningIndex", first,
				"duplicateIndex", i)
			continue
		}
		nameToIndex[def.Name] = i

		out = append(out, def)
	}

	logger.V(logging.DEBUG).Info("Parsed system definitions",
		"systemCount", len(out),
		"skipped", len(file.Systems)-len(out))

	return out, nil
}

// LoadSystemDefinitions reads and parses the definitions file at path.
func LoadSystemDefinitions(ctx context.Context, path string) ([]numeralv1alpha1.SystemDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading system definitions %s: %w", path, err)
	}
	return ParseSystemDefinitions(ctx, data)
}
