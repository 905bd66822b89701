// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofolio",
	Short: "GoFolio is a personal portfolio backend",
	Long: `GoFolio is a personal portfolio backend serving blog posts,
repositories, contact messages, and profile settings through a JSON API
with an authenticated admin surface.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
