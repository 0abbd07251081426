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

package command

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"swim.land/swim/animator"
	"swim.land/swim/cmd/swim/root"
)

// swim executes the root command with the given arguments and returns its
// combined output. Every run uses the line renderer on a fast ticker so the
// draws can be split apart afterwards.
func swim(args ...string) string {
	cmd := root.Cmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--force", "--line", "--interval", "1ms"}, args...))
	Expect(cmd.Execute()).To(Succeed())
	return out.String()
}

// redraws splits line-renderer output into one string per draw.
func redraws(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\x1b[2K\r")[1:]
}

var _ = Describe("Swim command user:", func() {
	When("running a bounded count with a known total", func() {
		It("should draw one fraction-suffixed frame per tick and stop", func() {
			out := swim("--count", "3", "--total", "10")
			Expect(out).To(HaveSuffix("\n"))

			draws := redraws(out)
			Expect(draws).To(HaveLen(3))
			frames := animator.Default().Frames
			for i, draw := range draws {
				Expect(draw).To(Equal(fmt.Sprintf("%s %d/10", frames[i], i+1)))
			}
		})
	})

	When("running a bounded count without a total", func() {
		It("should still report the iteration as a bare amount", func() {
			draws := redraws(swim("--count", "3"))
			Expect(draws).To(HaveLen(3))
			for i, draw := range draws {
				Expect(draw).To(HaveSuffix(fmt.Sprintf(" %d", i+1)))
			}
		})
	})

	When("asked for percentages", func() {
		It("should render the floored percent instead of a fraction", func() {
			draws := redraws(swim("--count", "2", "--total", "10", "--percent"))
			Expect(draws).To(HaveLen(2))
			Expect(draws[0]).To(HaveSuffix(" 10%"))
			Expect(draws[1]).To(HaveSuffix(" 20%"))
		})
	})

	When("animating another creature", func() {
		It("should draw that creature's frames", func() {
			draws := redraws(swim("--count", "1", "--creature", "bird"))
			Expect(draws).To(HaveLen(1))
			Expect(draws[0]).To(HavePrefix(animator.Bird().Frames[0]))
		})
	})
})
