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

// Package progress decorates an animator with a numeric status suffix, so a
// swimming creature can double as a progress indicator.
package progress

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"swim.land/swim/animator"
)

// A Format renders the status suffix from the current amount and the total.
// A zero total means the total is unknown. The format of a Decorator never
// changes once constructed, so one run renders consistently.
type Format func(amount, total int64) string

// Fraction renders "amount/total", or the bare amount when the total is
// unknown. Values carry thousands separators.
func Fraction(amount, total int64) string {
	if total == 0 {
		return humanize.Comma(amount)
	}
	return humanize.Comma(amount) + "/" + humanize.Comma(total)
}

// Percent renders the completed share as an integer percentage, floored.
// When the total is unknown it falls back to the bare amount.
func Percent(amount, total int64) string {
	if total == 0 {
		return humanize.Comma(amount)
	}
	return fmt.Sprintf("%d%%", amount*100/total)
}

// Decorator wraps an Animator and appends a formatted status suffix to the
// frames it draws. Like the Animator it is not safe for concurrent use.
type Decorator struct {
	animator *animator.Animator
	total    int64
	totalSet bool
	format   Format
}

// Option configures a Decorator at construction.
type Option func(*Decorator)

// WithTotal declares the amount at which the work completes. It must be
// positive; an unknown total is declared by not using this option.
func WithTotal(total int64) Option {
	return func(d *Decorator) {
		d.total = total
		d.totalSet = true
	}
}

// WithFormat overrides the default Fraction format.
func WithFormat(f Format) Option {
	return func(d *Decorator) {
		d.format = f
	}
}

// New wraps an Animator. A nil animator gets the default creature drawing to
// standard output. A non-positive total is rejected with
// ErrInvalidConfiguration.
func New(a *animator.Animator, opts ...Option) (*Decorator, error) {
	d := &Decorator{
		animator: a,
		format:   Fraction,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.totalSet && d.total <= 0 {
		return nil, fmt.Errorf("%w: total must be positive, got %d", animator.ErrInvalidConfiguration, d.total)
	}
	if d.animator == nil {
		var err error
		if d.animator, err = animator.NewCreature(animator.Default()); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Animate draws the next frame with no status suffix, exactly as the
// undecorated animator would.
func (d *Decorator) Animate() error {
	return d.animator.Animate()
}

// AnimateAmount draws the next frame with the formatted amount appended
// after a separating space. The combined line goes through the animator's
// renderer, so the erase bookkeeping covers the suffix as well as the frame.
// Negative amounts are formatted verbatim.
func (d *Decorator) AnimateAmount(amount int64) error {
	return d.animator.Renderer().Redraw(d.animator.Next() + " " + d.format(amount, d.total))
}
