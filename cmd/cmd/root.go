package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ostafen/gifmaker/internal/env"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - GIF89a encoding tool",
	}

	rootCmd.AddCommand(DefineEncodeCommand())
	rootCmd.AddCommand(DefineRainbowCommand())
	rootCmd.AddCommand(DefineInfoCommand())

	return rootCmd.Execute()
}
