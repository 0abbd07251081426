/*
Copyright The Swim Authors.
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

package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"swim.land/swim/animator"
)

func creaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "creatures",
		Short: "List the built-in creatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range animator.Creatures() {
				sample := strings.TrimSpace(c.Frames[len(c.Frames)/2])
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %d frames\n", c.Name, sample, len(c.Frames)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
