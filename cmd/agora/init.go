package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/agora/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <site>",
	Short: "Create a new site from the default theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scaffold.Run(afero.NewOsFs(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
