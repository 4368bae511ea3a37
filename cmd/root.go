// Package cmd defines the CLI: serve runs the API server, migrate applies
// schema migrations, and seed provisions a development database.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newswire",
	Short: "Newswire is a news publishing API with moderated submissions",
	Long: `Newswire serves a REST API for submitting, moderating, and reading
news articles, with likes, comments, view counting, and a derived
popularity score.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
