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
	"errors"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Terminal output option struct.
type TTY struct {
	Force bool
}

// ApplyFlags applies flags to a command flag set.
func (opts *TTY) ApplyFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.Force, "force", "", false, "animate even when stdout is not a terminal")
}

// Parse checks that stdout can host an in-place animation.
func (opts *TTY) Parse() error {
	if !opts.Force && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use --force to animate anyway")
	}
	return nil
}
