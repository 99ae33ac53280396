package cmd

import (
	"fmt"
	"os"

	"github.com/averille/explain/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "explain",
	Short: "Ask a model for a detailed explanation, streamed live",
	Long: `explain sends a question to an LLM backend and streams the answer
into your terminal as it is generated.

Examples:
  explain ask "Why is the sky blue?"
  explain ask "How does TCP congestion control work?" -b ollama
  explain ask "What is a monad?" --model gpt-4o-mini
  explain models                        # list local models
  explain config                        # view configuration`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}
