package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoFolio/GoFolio/internal/uniuri"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(tokenCmd)
}

// tokenCmd prints a fresh random admin token for the Webserver.AdminToken
// config setting.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a random admin API token",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(uniuri.NewLen(uniuri.TokenLen))
	},
}
