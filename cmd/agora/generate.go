package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/agora/builder/run"
)

var generateCmd = &cobra.Command{
	Use:     "generate <site>",
	Aliases: []string{"build", "g"},
	Short:   "Build the site into its deploy directory",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return generate(ctx, args[0])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generate(ctx context.Context, siteDir string) error {
	if err := run.Run(ctx, siteDir, newLogger()); err != nil {
		return err
	}
	fmt.Println("✅ Success!")
	return nil
}
