// Package assets embeds the default site created by "agora init".
package assets

import (
	"embed"
	"io/fs"
)

//go:embed theme
var themeFS embed.FS

// Theme returns the default site tree rooted at its top directory.
func Theme() fs.FS {
	sub, err := fs.Sub(themeFS, "theme")
	if err != nil {
		panic(err)
	}
	return sub
}

// GetFile returns one file of the default site, e.g. "layout/index.html".
func GetFile(name string) ([]byte, error) {
	return fs.ReadFile(Theme(), name)
}
