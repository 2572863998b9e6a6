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

// Package cli implements the numeral command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	numeralv1alpha1 "github.com/llm-d/numeral-converter/api/v1alpha1"
	"github.com/llm-d/numeral-converter/internal/config"
	"github.com/llm-d/numeral-converter/internal/converter"
	"github.com/llm-d/numeral-converter/internal/logging"
	"github.com/llm-d/numeral-converter/internal/metrics"
)

// app is the state shared by subcommands, built once the flags are parsed.
type app struct {
	cfg      *config.Config
	recorder *metrics.Recorder
	service  *converter.Service
}

// NewRootCommand builds the numeral command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	v := viper.New()

	root := &cobra.Command{
		Use:           "numeral",
		Short:         "Convert numbers between numeral systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, v)
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newConvertCommand(a),
		newSystemsCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	ctx := logging.IntoContext(cmd.Context(), logger)
	cmd.SetContext(ctx)

	defs, err := a.definitions(cmd, cfg)
	if err != nil {
		return err
	}
	registry, err := converter.NewRegistry(ctx, defs)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.recorder = metrics.NewRecorder()
	a.service = converter.NewService(registry, a.recorder)
	logger.V(logging.DEBUG).Info("Initialized", "systems", len(registry.Names()), "definitions", cfg.Definitions)
	return nil
}

// dumpMetrics writes the recorded metrics to stderr when --metrics is set.
func (a *app) dumpMetrics(cmd *cobra.Command) {
	if a.cfg == nil || !a.cfg.Metrics {
		return
	}
	if err := a.recorder.WriteText(cmd.ErrOrStderr()); err != nil {
		logging.FromContext(cmd.Context()).Error(err, "Failed to write metrics")
	}
}

func (a *app) definitions(cmd *cobra.Command, cfg *config.Config) ([]numeralv1alpha1.SystemDefinition, error) {
	if cfg.Definitions == "" {
		return nil, nil
	}
	defs, err := config.LoadSystemDefinitions(cmd.Context(), cfg.Definitions)
	if err != nil {
		return nil, fmt.Errorf("loading --%s: %w", config.KeyDefinitions, err)
	}
	return defs, nil
}
