package utils

import (
	"sort"

	"github.com/Kush-Singh-26/agora/builder/models"
)

// SortRecords orders posts newest first. Equal dates fall back to title
// (descending) and then source path so the order never depends on
// directory listing.
func SortRecords(posts []*models.Record) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.Title != b.Title {
			return a.Title > b.Title
		}
		return a.SourcePath < b.SourcePath
	})
}
