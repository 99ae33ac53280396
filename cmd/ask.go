package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/averille/explain/internal/config"
	"github.com/averille/explain/internal/llm"
	"github.com/averille/explain/internal/prompt"
	"github.com/averille/explain/internal/render"
	"github.com/averille/explain/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	askBackend string
	askModel   string
	askText    bool
	askDebug   bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question and stream the answer",
	Long: `Ask the configured backend a question and stream the answer live.

Examples:
  explain ask "What is the capital of France?"
  explain ask "How do I reverse a string in Go?" -b ollama
  explain ask "Explain TCP vs UDP" -m gpt-4o-mini
  explain ask "List 5 programming languages" --text`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askBackend, "backend", "b", "", "Backend to use: openai or ollama (default from config)")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "Override the configured model")
	askCmd.Flags().BoolVarP(&askText, "text", "t", false, "Plain text output instead of a live rendered view")
	askCmd.Flags().BoolVarP(&askDebug, "debug", "d", false, "Show debug information")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := llm.NewProvider(cfg, askBackend, askModel)
	if err != nil {
		return err
	}

	req := llm.Request{
		Messages: prompt.Conversation(cfg.Persona, question),
		Debug:    askDebug,
	}

	stream, err := provider.Stream(ctx, req)
	if err != nil {
		return err
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if askText || !isTTY {
		target := render.NewWriterTarget(os.Stdout)
		render.NewAggregator(target).Consume(stream)
		return nil
	}

	// The aggregator feeds the live view from a goroutine; Run blocks in
	// this one until the target is closed or the user quits.
	target := ui.NewLiveTarget()
	go render.NewAggregator(target).Consume(stream)
	_, err = target.Run()
	return err
}
