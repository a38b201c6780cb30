package main

import (
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	newpost "github.com/Kush-Singh-26/agora/internal/new"
)

var newCmd = &cobra.Command{
	Use:   "new <site> <title>",
	Short: "Create a new post dated now",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args[1:], " ")
		_, err := newpost.Run(afero.NewOsFs(), args[0], title, time.Now())
		return err
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
