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
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSystemsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "List the registered numeral systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.dumpMetrics(cmd)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tKIND\tMIN\tMAX")
			for _, info := range a.service.Systems() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Kind, bound(info.MinValue), bound(info.MaxValue))
			}
			return w.Flush()
		},
	}
}

func bound(v float64) string {
	switch {
	case v >= math.MaxFloat64:
		return "+inf"
	case v <= -math.MaxFloat64:
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
