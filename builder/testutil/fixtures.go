// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"strings"
	"time"

	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Delimiter is the 79-dash line that fences the header block.
var Delimiter = strings.Repeat("-", 79)

// Source returns a source file with the given header and body.
func Source(front, body string) string {
	return Delimiter + "\n" + front + "\n" + Delimiter + "\n" + body + "\n"
}

// Post returns a parsed-looking post dated date. URLs follow the default
// year/month/slug layout without a trailing slash.
func Post(title string, date time.Time, categories ...string) *models.Record {
	slug := utils.Slugify(title)
	r := &models.Record{
		Kind:       models.KindPost,
		SourcePath: "/site/posts/" + slug + ".md",
		Raw:        []byte(title),
		Title:      title,
		Slug:       slug,
		Date:       date,
		Year:       date.Format("2006"),
		Month:      date.Format("01"),
		Day:        date.Format("02"),
		AtomDate:   utils.AtomDate(date),
	}
	r.URL = r.Year + "/" + r.Month + "/" + slug
	r.OutputPath = r.URL + ".html"
	for _, c := range categories {
		r.Categories = append(r.Categories, models.Category{Name: c, Slug: utils.Slugify(c)})
	}
	return r
}

// Day is midnight UTC on the given date.
func Day(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }
