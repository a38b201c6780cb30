package planner

import "fmt"

// IndexSlice returns the number of posts shown on the index and whether
// the list was cut short. perPage 0 means no cap.
func IndexSlice(total, perPage int) (end int, extra bool) {
	if perPage <= 0 || total <= perPage {
		return total, false
	}
	return perPage, true
}

// Window is one paginated listing page.
type Window struct {
	Number int
	Start  int
	End    int
	Prev   string
	Next   string
}

// Windows splits the posts after the index into pages of perPage posts.
// Page x holds posts [x*perPage, (x+1)*perPage) for x in 1..total/perPage,
// with the index covering page 0. The last window is clamped to total.
func Windows(total, perPage int) []Window {
	if perPage <= 0 || total <= perPage {
		return nil
	}

	pages := total / perPage
	windows := make([]Window, 0, pages)
	for x := 1; x <= pages; x++ {
		start := x * perPage
		end := start + perPage
		if end > total {
			end = total
		}

		w := Window{Number: x, Start: start, End: end, Prev: "/"}
		if x > 1 {
			w.Prev = fmt.Sprintf("/page/%d/", x)
		}
		if x < pages {
			w.Next = fmt.Sprintf("/page/%d/", x+1)
		}
		windows = append(windows, w)
	}
	return windows
}
