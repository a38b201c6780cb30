// Package generators writes the feed and sitemap when the layout does not
// provide templates for them.
package generators

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Sitemap lists the site root, every post and page, and the configured
// extra URLs. Relative extras are resolved against baseURL.
func Sitemap(baseURL string, posts, pages []*models.Record, extra []string, now time.Time) ([]byte, error) {
	urls := make([]models.Url, 0, len(posts)+len(pages)+len(extra)+1)
	urls = append(urls, models.Url{Loc: baseURL + "/", LastMod: utils.AtomDate(now)})
	for _, p := range posts {
		urls = append(urls, models.Url{Loc: absURL(baseURL, p.URL), LastMod: p.AtomDate})
	}
	for _, p := range pages {
		urls = append(urls, models.Url{Loc: absURL(baseURL, p.URL)})
	}
	for _, u := range extra {
		urls = append(urls, models.Url{Loc: absURL(baseURL, u)})
	}

	output, err := xml.MarshalIndent(models.UrlSet{Urls: urls}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return []byte(xml.Header + string(output) + "\n"), nil
}

func absURL(baseURL, u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return baseURL + "/" + strings.TrimPrefix(u, "/")
}
