// Command agora builds static blogs from a directory of posts and pages.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "agora",
	Short: "A static blog generator",
	Long: `agora turns a site directory of posts, pages and layouts into a
static blog with an index, category and archive pages, an Atom feed and a
sitemap.

Quick Start:
  agora init mysite            Create a site from the default theme
  agora new mysite "A title"   Start a new post
  agora generate mysite        Build mysite/deploy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
