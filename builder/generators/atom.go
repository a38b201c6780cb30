package generators

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/Kush-Singh-26/agora/builder/config"
	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Atom builds an Atom 1.0 feed for posts. Timestamps are UTC with a
// literal Z suffix.
func Atom(cfg *config.Config, posts []*models.Record, updated time.Time) ([]byte, error) {
	base := cfg.BaseURL()
	feed := models.AtomFeed{
		Title:   cfg.SiteName,
		ID:      base + "/",
		Updated: utils.AtomDate(updated),
		Links: []models.AtomLink{
			{Href: base + "/atom.xml", Rel: "self"},
			{Href: base + "/"},
		},
	}
	if cfg.Author != "" {
		feed.Author = &models.AtomPerson{Name: cfg.Author}
	}

	for _, p := range posts {
		link := absURL(base, p.URL)
		entry := models.AtomEntry{
			Title:   p.Title,
			ID:      link,
			Link:    models.AtomLink{Href: link},
			Updated: p.AtomDate,
			Content: models.AtomContent{Type: "html", Body: string(p.Content)},
		}
		if p.Author != "" {
			entry.Author = &models.AtomPerson{Name: p.Author}
		}
		for _, c := range p.Categories {
			entry.Categories = append(entry.Categories, models.AtomCategory{Term: c.Slug, Label: c.Name})
		}
		feed.Entries = append(feed.Entries, entry)
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode atom feed: %w", err)
	}
	return []byte(xml.Header + string(output) + "\n"), nil
}
