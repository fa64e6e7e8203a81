package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "triagectl",
	Short: "Automated email triage and response agent",
	Long: `triagectl scans a mailbox, classifies each message, scores its
priority, drafts replies for the ones that need one, and surfaces the
result as an approval queue.`,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
