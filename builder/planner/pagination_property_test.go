//go:build property
// +build property

package planner

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPaginationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Windows start at x*N for x in 1..floor(total/N), so the last one
	// always reaches past total and every post lands on exactly one page.
	properties.Property("index and pages show every post exactly once", prop.ForAll(
		func(total, per int) bool {
			seen := make([]int, total)
			end, _ := IndexSlice(total, per)
			for i := 0; i < end; i++ {
				seen[i]++
			}
			for _, w := range Windows(total, per) {
				for i := w.Start; i < w.End; i++ {
					seen[i]++
				}
			}
			for _, n := range seen {
				if n != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 200),
		gen.IntRange(1, 25),
	))

	properties.Property("last window has no next", prop.ForAll(
		func(total, per int) bool {
			windows := Windows(total, per)
			if len(windows) == 0 {
				return true
			}
			return windows[len(windows)-1].Next == "" && windows[0].Prev == "/"
		},
		gen.IntRange(0, 200),
		gen.IntRange(1, 25),
	))

	properties.TestingRun(t)
}
