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
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"swim.land/swim/animator"
)

// Creature option struct.
type Creature struct {
	Name string
	File string
}

// ApplyFlags applies flags to a command flag set.
func (opts *Creature) ApplyFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&opts.Name, "creature", "c", animator.Default().Name, "built-in creature to animate")
	fs.StringVarP(&opts.File, "creature-file", "", "", "YAML file holding a creature definition")
}

// Parse resolves the selected creature. A creature file takes precedence
// over the built-in name; the definition is validated by the animator
// constructor, not here.
func (opts *Creature) Parse() (animator.Creature, error) {
	if opts.File == "" {
		return animator.Lookup(opts.Name)
	}
	raw, err := os.ReadFile(opts.File)
	if err != nil {
		return animator.Creature{}, err
	}
	var c animator.Creature
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return animator.Creature{}, fmt.Errorf("invalid creature file %s: %w", opts.File, err)
	}
	if c.Name == "" {
		c.Name = opts.File
	}
	return c, nil
}
