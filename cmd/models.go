package cmd

import (
	"context"
	"fmt"

	"github.com/averille/explain/internal/config"
	"github.com/averille/explain/internal/llm"
	"github.com/averille/explain/internal/ui"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the local Ollama server",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	provider := llm.NewOllamaProvider(cfg.Ollama.Host, cfg.Ollama.Model)
	models, err := provider.ListModels(context.Background())
	if err != nil {
		return fmt.Errorf("is the Ollama server running at %s? %w", cfg.Ollama.Host, err)
	}

	if len(models) == 0 {
		fmt.Println("No models installed. Pull one with: ollama pull <name>")
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("%-40s %10s  %s", "NAME", "SIZE", "MODIFIED")))
	for _, m := range models {
		fmt.Printf("%-40s %10s  %s\n", m.Name, formatSize(m.Size), m.ModifiedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func formatSize(bytes int64) string {
	const (
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.0f MB", float64(bytes)/mb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
