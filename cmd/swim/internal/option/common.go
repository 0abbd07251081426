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

package option

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"swim.land/swim/internal/trace"
)

// Common option struct.
type Common struct {
	debugFlag bool
	Verbose   bool
}

// ApplyFlags applies flags to a command flag set.
func (opts *Common) ApplyFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.debugFlag, "debug", "d", false, "debug mode")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
}

// WithContext returns a context with a logger configured from the common
// flags, and the logger itself.
func (opts *Common) WithContext(ctx context.Context) (context.Context, logrus.FieldLogger) {
	var logLevel logrus.Level
	if opts.debugFlag {
		logLevel = logrus.DebugLevel
	} else if opts.Verbose {
		logLevel = logrus.InfoLevel
	} else {
		logLevel = logrus.WarnLevel
	}
	return trace.WithLoggerLevel(ctx, logLevel)
}
