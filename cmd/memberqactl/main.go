package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "memberqactl",
		Short: "CLI client for the member QA service REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Member QA service base URL")

	// ask subcommand
	askCmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a question about the team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			question, _ := cmd.Flags().GetString("question")
			return runAsk(apiFlag, question, os.Stdout)
		},
	}
	askCmd.Flags().StringP("question", "q", "", "Natural-language question (required)")
	_ = askCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(askCmd)

	// health subcommand
	rootCmd.AddCommand(&cobra.Command{
		Use:   "health",
		Short: "Show service health and corpus counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(apiFlag, os.Stdout)
		},
	})

	// reload subcommand
	rootCmd.AddCommand(&cobra.Command{
		Use:   "reload",
		Short: "Refresh the message corpus from the feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReload(apiFlag, os.Stdout)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
