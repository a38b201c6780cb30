// Package new creates post source files.
package new

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Kush-Singh-26/agora/builder/parser"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Run writes posts/<date>-<slug>.md under siteDir and returns its path.
// The date prefix keeps the posts directory in chronological order.
func Run(fsys afero.Fs, siteDir, title string, now time.Time) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("a title is required")
	}
	title = cases.Title(language.English, cases.NoLower).String(title)

	slug := utils.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title %q produces an empty slug", title)
	}

	filename := filepath.Join(siteDir, "posts", fmt.Sprintf("%s-%s.md", now.Format("2006-01-02"), slug))
	if exists, _ := afero.Exists(fsys, filename); exists {
		return "", fmt.Errorf("file already exists: %s", filename)
	}

	delimiter := strings.Repeat("-", parser.DelimiterWidth)
	content := fmt.Sprintf(`%s
title: %q
date: %s
categories: []
%s
Start writing here...
`, delimiter, title, now.Format("2006-01-02 15:04"), delimiter)

	if err := utils.WriteFileVFS(fsys, filename, []byte(content)); err != nil {
		return "", err
	}

	fmt.Printf("✅ Created: %s\n", filename)
	return filename, nil
}
