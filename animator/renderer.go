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
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// eraseLine clears the whole line regardless of cursor position.
const eraseLine = "\x1b[2K"

// A Renderer redraws a single line of text in place: it erases whatever it
// drew last, then draws text with no trailing newline so the next call can
// overwrite it again. Each Redraw is a single write to the underlying
// stream. Erase bookkeeping lives here so that callers composing longer
// lines (e.g. a progress suffix) are erased correctly.
type Renderer interface {
	Redraw(text string) error
}

type backspaceRenderer struct {
	out       io.Writer
	lastWidth int
}

// NewBackspaceRenderer returns a Renderer that erases the previous draw by
// emitting one backspace per printed column. Columns no longer covered by a
// narrower text are blanked out.
func NewBackspaceRenderer(w io.Writer) Renderer {
	return &backspaceRenderer{out: w}
}

func (r *backspaceRenderer) Redraw(text string) error {
	width := runewidth.StringWidth(text)
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\b", r.lastWidth))
	sb.WriteString(text)
	if leftover := r.lastWidth - width; leftover > 0 {
		sb.WriteString(strings.Repeat(" ", leftover))
		sb.WriteString(strings.Repeat("\b", leftover))
	}
	if _, err := fmt.Fprint(r.out, sb.String()); err != nil {
		return err
	}
	r.lastWidth = width
	return nil
}

type lineRenderer struct {
	out io.Writer
}

// NewLineRenderer returns a Renderer for terminals treated as full-line
// overwrite devices: it erases with an erase-line control sequence and a
// carriage return before drawing.
func NewLineRenderer(w io.Writer) Renderer {
	return &lineRenderer{out: w}
}

func (r *lineRenderer) Redraw(text string) error {
	_, err := fmt.Fprint(r.out, eraseLine+"\r"+text)
	return err
}
