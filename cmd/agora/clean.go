package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/agora/internal/clean"
)

var keepCache bool

var cleanCmd = &cobra.Command{
	Use:   "clean <site>",
	Short: "Remove the deploy directory and the hash cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return clean.Run(afero.NewOsFs(), args[0], keepCache)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVar(&keepCache, "keep-cache", false, "leave the hash cache in place")
}
