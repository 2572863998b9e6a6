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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llm-d/numeral-converter/internal/converter"
)

func newConvertCommand(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert VALUE from one numeral system to another",
		Example: `  numeral convert --from arabic.Arabic --to roman.Standard 1994
  numeral convert --from roman.Standard --to egyptian.Egyptian MCMXCIV`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.dumpMetrics(cmd)
			out, err := a.service.ConvertText(cmd.Context(), args[0], from, to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), converter.FormatValue(out))
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source numeral system, e.g. arabic.Arabic")
	cmd.Flags().StringVar(&to, "to", "", "target numeral system, e.g. roman.Standard")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
