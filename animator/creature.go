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

package animator

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// A Creature names an ordered forward frame set and an optional mirrored
// reverse set of the same length and printed width, drawn while the creature
// moves backward.
type Creature struct {
	Name    string
	Frames  []string
	Reverse []string
}

// worldWidth is the number of columns the drifting built-ins swim across.
const worldWidth = 24

// Bass is the default creature, a little fish drifting back and forth.
func Bass() Creature {
	return Creature{
		Name:    "bass",
		Frames:  drift(">))'>", worldWidth),
		Reverse: drift("<'((<", worldWidth),
	}
}

// Salmon is a bigger fish than the bass.
func Salmon() Creature {
	return Creature{
		Name:    "salmon",
		Frames:  drift("><{{{*>", worldWidth),
		Reverse: drift("<*}}}><", worldWidth),
	}
}

// Bird flaps in place rather than drifting across the line.
func Bird() Creature {
	return Creature{
		Name: "bird",
		Frames: []string{
			`\(o)/`,
			`|(o)|`,
			`/(o)\`,
			`|(o)|`,
		},
	}
}

// Default is the creature used when none is named.
func Default() Creature {
	return Bass()
}

// Creatures returns fresh copies of the built-in creatures, so callers can
// never corrupt the shared tables.
func Creatures() []Creature {
	return []Creature{Bass(), Salmon(), Bird()}
}

// Lookup finds a built-in creature by name.
func Lookup(name string) (Creature, error) {
	for _, c := range Creatures() {
		if c.Name == name {
			return c, nil
		}
	}
	return Creature{}, fmt.Errorf("%w: unknown creature %q", ErrInvalidConfiguration, name)
}

// drift renders art at successive positions across a world of the given
// width, padding both sides so every frame keeps the same printed width.
func drift(art string, width int) []string {
	w := runewidth.StringWidth(art)
	if w >= width {
		return []string{art}
	}
	frames := make([]string, 0, width-w+1)
	for lead := 0; lead <= width-w; lead++ {
		frames = append(frames, strings.Repeat(" ", lead)+art+strings.Repeat(" ", width-w-lead))
	}
	return frames
}
