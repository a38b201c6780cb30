package models

// SiteIndex holds the navigation structures derived from the post set.
// Every post list is newest first.
type SiteIndex struct {
	Posts []*Record
	Pages []*Record

	Categories    map[string][]*Record
	CategoryNames []string

	// Years maps year -> month -> days. Day lists are only filled when
	// day-level URLs are enabled.
	Years     map[string]map[string][]string
	YearNames []string

	Archives map[string][]*Record
}

func NewSiteIndex() *SiteIndex {
	return &SiteIndex{
		Categories: make(map[string][]*Record),
		Years:      make(map[string]map[string][]string),
		Archives:   make(map[string][]*Record),
	}
}

// Views converts records to template maps, preserving order.
func Views(records []*Record) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(records))
	for _, r := range records {
		out = append(out, r.View())
	}
	return out
}
