// Package site derives the navigation indexes from the parsed records.
package site

import (
	"sort"

	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Aggregate sorts posts newest first and groups them by category, year
// and month. Day lists are only filled when includeDay is set.
//
// Categories are grouped by slug, so "Go" and "go" share one listing
// under the spelling of the newest post that uses it.
func Aggregate(posts, pages []*models.Record, includeDay bool) *models.SiteIndex {
	idx := models.NewSiteIndex()
	names := make(map[string]string)

	idx.Posts = make([]*models.Record, len(posts))
	copy(idx.Posts, posts)
	utils.SortRecords(idx.Posts)
	idx.Pages = pages

	for _, p := range idx.Posts {
		categories := p.Categories
		if len(categories) == 0 {
			categories = []models.Category{{Name: models.UncategorizedName, Slug: utils.Slugify(models.UncategorizedName)}}
		}
		seen := make(map[string]bool, len(categories))
		for _, c := range categories {
			name, ok := names[c.Slug]
			if !ok {
				name = c.Name
				names[c.Slug] = name
				idx.CategoryNames = append(idx.CategoryNames, name)
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			idx.Categories[name] = append(idx.Categories[name], p)
		}

		months, ok := idx.Years[p.Year]
		if !ok {
			months = make(map[string][]string)
			idx.Years[p.Year] = months
			idx.YearNames = append(idx.YearNames, p.Year)
		}
		days, ok := months[p.Month]
		if !ok {
			days = []string{}
		}
		if includeDay && !contains(days, p.Day) {
			days = append(days, p.Day)
		}
		months[p.Month] = days

		idx.Archives[p.Year] = append(idx.Archives[p.Year], p)
	}

	sort.Strings(idx.CategoryNames)
	sort.Sort(sort.Reverse(sort.StringSlice(idx.YearNames)))
	return idx
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CategoryView is the template shape of the category index.
func CategoryView(idx *models.SiteIndex) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(idx.CategoryNames))
	for _, name := range idx.CategoryNames {
		if name == "" {
			continue
		}
		out = append(out, map[string]interface{}{
			"name":  name,
			"slug":  utils.Slugify(name),
			"count": len(idx.Categories[name]),
		})
	}
	return out
}

// YearView is the template shape of the year index, newest year first
// and months newest first.
func YearView(idx *models.SiteIndex) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(idx.YearNames))
	for _, year := range idx.YearNames {
		months := make([]string, 0, len(idx.Years[year]))
		for m := range idx.Years[year] {
			months = append(months, m)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(months)))

		monthViews := make([]map[string]interface{}, 0, len(months))
		for _, m := range months {
			monthViews = append(monthViews, map[string]interface{}{
				"month": m,
				"days":  idx.Years[year][m],
			})
		}
		out = append(out, map[string]interface{}{
			"year":   year,
			"slug":   utils.Slugify(year),
			"months": monthViews,
			"count":  len(idx.Archives[year]),
		})
	}
	return out
}
