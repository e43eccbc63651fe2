package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "foliobot",
	Short: "Portfolio assistant daemon and CLI",
	Long: `foliobot serves the portfolio site's chat assistant, visitor analytics,
and contact endpoints, and provides a CLI for local queries and administration.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(visitorsCmd)
	rootCmd.AddCommand(messagesCmd)
	rootCmd.AddCommand(suggestionsCmd)
	rootCmd.AddCommand(chatlogCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
