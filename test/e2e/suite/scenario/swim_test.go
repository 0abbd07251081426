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

package scenario

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"swim.land/swim/animator"
	"swim.land/swim/progress"
)

// redraws splits the output of a line renderer into one string per draw.
func redraws(out *bytes.Buffer) []string {
	parts := strings.Split(out.String(), "\x1b[2K\r")
	return parts[1:]
}

var _ = Describe("Long-running loop user:", func() {
	When("swimming without progress", func() {
		It("should traverse the frame set forward and back", func() {
			var out bytes.Buffer
			creature := animator.Default()
			a, err := animator.NewCreature(creature, animator.WithRenderer(animator.NewLineRenderer(&out)))
			Expect(err).ToNot(HaveOccurred())

			period := 2*len(creature.Frames) - 2
			for i := 0; i < period; i++ {
				Expect(a.Animate()).To(Succeed())
			}

			draws := redraws(&out)
			Expect(draws).To(HaveLen(period))
			Expect(draws[0]).To(Equal(creature.Frames[0]))
			Expect(draws[len(creature.Frames)-1]).To(Equal(creature.Frames[len(creature.Frames)-1]))
			// after the far boundary the mirrored frames walk back
			Expect(draws[len(creature.Frames)]).To(Equal(creature.Reverse[len(creature.Frames)-2]))
			Expect(out.String()).ToNot(HaveSuffix("\n"))
		})
	})

	When("decorating work with a known total", func() {
		It("should suffix every frame with the running fraction", func() {
			var out bytes.Buffer
			creature := animator.Default()
			a, err := animator.NewCreature(creature, animator.WithRenderer(animator.NewLineRenderer(&out)))
			Expect(err).ToNot(HaveOccurred())
			total := len(creature.Frames)
			d, err := progress.New(a, progress.WithTotal(int64(total)))
			Expect(err).ToNot(HaveOccurred())

			for i := 1; i <= total; i++ {
				Expect(d.AnimateAmount(int64(i))).To(Succeed())
			}

			draws := redraws(&out)
			Expect(draws).To(HaveLen(total))
			Expect(draws[0]).To(Equal(creature.Frames[0] + fmt.Sprintf(" 1/%d", total)))
			Expect(draws[total-1]).To(HaveSuffix(fmt.Sprintf(" %d/%d", total, total)))
		})
	})

	When("the total is unknown", func() {
		It("should suffix the bare amount", func() {
			var out bytes.Buffer
			a, err := animator.NewCreature(animator.Bird(), animator.WithRenderer(animator.NewLineRenderer(&out)))
			Expect(err).ToNot(HaveOccurred())
			d, err := progress.New(a)
			Expect(err).ToNot(HaveOccurred())

			Expect(d.AnimateAmount(7)).To(Succeed())
			Expect(redraws(&out)[0]).To(HaveSuffix(" 7"))
		})
	})
})
