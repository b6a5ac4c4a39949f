package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Portfolio API - contact form and project catalog backend",
	Long: `Portfolio API serves the portfolio site's project catalog and delivers
contact form submissions to the site owner by email.

Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendTestCmd)
	rootCmd.AddCommand(versionCmd)

	sendTestCmd.Flags().String("name", "Portfolio Test", "Sender name")
	sendTestCmd.Flags().String("email", "", "Sender email, used as Reply-To")
	sendTestCmd.Flags().String("subject", "Test message", "Message subject")
	sendTestCmd.Flags().String("message", "This is a test message from portfolio-api send-test.", "Message body")
	sendTestCmd.MarkFlagRequired("email")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
