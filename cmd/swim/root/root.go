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
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"swim.land/swim/animator"
	"swim.land/swim/cmd/swim/internal/option"
	"swim.land/swim/progress"
)

type swimOptions struct {
	option.Common
	option.TTY
	option.Creature

	interval time.Duration
	count    int64
	total    int64
	percent  bool
	line     bool
}

// Cmd returns the root command, which animates a creature until interrupted
// or a frame count is reached.
func Cmd() *cobra.Command {
	var opts swimOptions
	cmd := &cobra.Command{
		Use:   "swim [flags]",
		Short: "Animate a swimming ASCII creature while you wait",
		Long: `Animate a swimming ASCII creature while you wait

Example - Swim forever with the default bass:
  swim

Example - Draw 100 frames and report progress against a known total:
  swim --count 100 --total 100

Example - Report progress as a percentage:
  swim --count 100 --total 100 --percent

Example - Flap the bird at a slower pace:
  swim --creature bird --interval 250ms

Example - Swim a creature defined in a YAML file:
  swim --creature-file eel.yaml
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.TTY.Parse()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwim(cmd, &opts)
		},
	}

	cmd.Flags().DurationVarP(&opts.interval, "interval", "i", 100*time.Millisecond, "time between frames")
	cmd.Flags().Int64VarP(&opts.count, "count", "n", 0, "number of frames to draw, 0 for no limit")
	cmd.Flags().Int64VarP(&opts.total, "total", "t", 0, "progress total reported with each frame")
	cmd.Flags().BoolVarP(&opts.percent, "percent", "", false, "report progress as a percentage instead of a fraction")
	cmd.Flags().BoolVarP(&opts.line, "line", "", false, "redraw by overwriting the whole line instead of backspacing")
	opts.Common.ApplyFlags(cmd.Flags())
	opts.TTY.ApplyFlags(cmd.Flags())
	opts.Creature.ApplyFlags(cmd.Flags())

	cmd.AddCommand(creaturesCmd(), versionCmd())
	return cmd
}

func runSwim(cmd *cobra.Command, opts *swimOptions) error {
	ctx, logger := opts.WithContext(cmd.Context())
	creature, err := opts.Creature.Parse()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var renderer animator.Renderer = animator.NewBackspaceRenderer(out)
	if opts.line {
		renderer = animator.NewLineRenderer(out)
	}
	a, err := animator.NewCreature(creature, animator.WithRenderer(renderer))
	if err != nil {
		return err
	}

	format := progress.Fraction
	if opts.percent {
		format = progress.Percent
	}
	decoratorOpts := []progress.Option{progress.WithFormat(format)}
	if opts.total != 0 {
		decoratorOpts = append(decoratorOpts, progress.WithTotal(opts.total))
	}
	decorator, err := progress.New(a, decoratorOpts...)
	if err != nil {
		return err
	}

	logger.Debugf("animating %q every %v", creature.Name, opts.interval)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()
	// leave the final frame on screen, on its own line
	defer fmt.Fprintln(out)

	// a bounded run reports its iteration even without a known total
	reportAmount := opts.total != 0 || opts.count > 0
	for drawn := int64(1); ; drawn++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if reportAmount {
			err = decorator.AnimateAmount(drawn)
		} else {
			err = decorator.Animate()
		}
		if err != nil {
			return err
		}
		if opts.count > 0 && drawn >= opts.count {
			return nil
		}
	}
}
