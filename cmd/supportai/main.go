// Supportai serves the SupportAI AI-derived features over HTTP: raw
// completions, derived message fields, rule conditions, and flow
// steps, all backed by a single configured LLM provider with
// process-lifetime response caching.
//
// Usage:
//
//	supportai serve        # start the HTTP server
//	supportai version      # print the version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "supportai",
	Short: "SupportAI AI client service",
	Long:  "Serves SupportAI's AI-derived fields, rules, and flow steps over HTTP, memoizing identical provider requests.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print supportai version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "supportai version %s\n", version)
	},
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
