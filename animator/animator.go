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

// Package animator draws a looping ASCII-art animation on a single terminal
// line, one frame per call, overwriting the previous frame in place.
//
// Callers construct an Animator once and call Animate once per iteration of
// their own long-running loop:
//
//	a, err := animator.NewCreature(animator.Default(), animator.WithWriter(os.Stderr))
//	if err != nil {
//		return err
//	}
//	for _, item := range work {
//		_ = a.Animate()
//		churn(item)
//	}
package animator

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// Direction of travel through a frame set.
type Direction int

const (
	// Forward walks the frame set from first to last.
	Forward Direction = 1
	// Backward walks the frame set from last to first.
	Backward Direction = -1
)

// Animator walks an ordered set of fixed-width frames, drawing one frame per
// call and reflecting at the set boundaries so the creature swims back and
// forth instead of wrapping around.
//
// An Animator is not safe for concurrent use: it is meant to be driven by a
// single caller from a single loop.
type Animator struct {
	frames   []string
	reverse  []string
	width    int
	index    int
	dir      Direction
	last     string
	renderer Renderer
}

// Option configures an Animator at construction.
type Option func(*Animator)

// WithReverse supplies mirrored frames drawn while moving backward. The
// reverse set must match the forward set in length and printed width.
func WithReverse(frames []string) Option {
	return func(a *Animator) {
		a.reverse = frames
	}
}

// WithStart overrides the starting frame index.
func WithStart(index int) Option {
	return func(a *Animator) {
		a.index = index
	}
}

// WithDirection overrides the starting direction.
func WithDirection(d Direction) Option {
	return func(a *Animator) {
		a.dir = d
	}
}

// WithRenderer overrides the redraw backend.
func WithRenderer(r Renderer) Option {
	return func(a *Animator) {
		a.renderer = r
	}
}

// WithWriter draws to w with the default backspace renderer.
func WithWriter(w io.Writer) Option {
	return func(a *Animator) {
		a.renderer = NewBackspaceRenderer(w)
	}
}

// New creates an Animator over the given frames, starting at index 0 moving
// forward and drawing to standard output unless options say otherwise.
// It returns ErrInvalidConfiguration for an empty frame set, frames of
// uneven printed width, a mismatched reverse set, or an out-of-range start.
func New(frames []string, opts ...Option) (*Animator, error) {
	a := &Animator{
		frames: frames,
		dir:    Forward,
	}
	for _, opt := range opts {
		opt(a)
	}

	if len(a.frames) == 0 {
		return nil, fmt.Errorf("%w: empty frame set", ErrInvalidConfiguration)
	}
	a.width = runewidth.StringWidth(a.frames[0])
	if err := checkWidths(a.frames, a.width); err != nil {
		return nil, err
	}
	if a.reverse != nil {
		if len(a.reverse) != len(a.frames) {
			return nil, fmt.Errorf("%w: %d reverse frames for %d forward frames", ErrInvalidConfiguration, len(a.reverse), len(a.frames))
		}
		if err := checkWidths(a.reverse, a.width); err != nil {
			return nil, err
		}
	}
	if a.index < 0 || a.index >= len(a.frames) {
		return nil, fmt.Errorf("%w: start index %d outside frame set of size %d", ErrInvalidConfiguration, a.index, len(a.frames))
	}
	if a.dir != Forward && a.dir != Backward {
		return nil, fmt.Errorf("%w: direction must be Forward or Backward", ErrInvalidConfiguration)
	}
	if a.renderer == nil {
		a.renderer = NewBackspaceRenderer(os.Stdout)
	}
	return a, nil
}

// NewCreature creates an Animator for a creature, wiring its reverse frames
// if it has any.
func NewCreature(c Creature, opts ...Option) (*Animator, error) {
	return New(c.Frames, append([]Option{WithReverse(c.Reverse)}, opts...)...)
}

func checkWidths(frames []string, width int) error {
	for i, f := range frames {
		if w := runewidth.StringWidth(f); w != width {
			return fmt.Errorf("%w: frame %d has printed width %d, want %d", ErrInvalidConfiguration, i, w, width)
		}
	}
	return nil
}

// Animate erases the previously drawn frame and draws the next one in
// place, with no trailing newline. Write failures propagate unchanged.
func (a *Animator) Animate() error {
	return a.renderer.Redraw(a.Next())
}

// Next composes the frame for this call and advances the animation state
// without drawing. It exists so a decorator can append to the frame and pass
// the combined line through the same redraw path; most callers want Animate.
func (a *Animator) Next() string {
	frame := a.frames[a.index]
	if a.dir == Backward && a.reverse != nil {
		frame = a.reverse[a.index]
	}
	a.last = frame
	a.advance()
	return frame
}

// advance steps the index one frame, reflecting at the boundaries. The
// boundary frame occupies the call at which the direction flips, giving a
// full back-and-forth period of 2N-2 for N frames.
func (a *Animator) advance() {
	if len(a.frames) == 1 {
		return
	}
	next := a.index + int(a.dir)
	if next < 0 || next >= len(a.frames) {
		a.dir = -a.dir
		next = a.index + int(a.dir)
	}
	a.index = next
}

// Frame reports the frame most recently composed by Animate or Next.
func (a *Animator) Frame() string {
	return a.last
}

// Width reports the fixed printed width shared by every frame.
func (a *Animator) Width() int {
	return a.width
}

// Renderer exposes the redraw backend so that a decorator shares its erase
// bookkeeping.
func (a *Animator) Renderer() Renderer {
	return a.renderer
}
