package cmd

import (
	"fmt"
	"os"

	"github.com/averille/explain/internal/config"
	"github.com/averille/explain/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configView is the printable shape of the config, with the credential
// masked.
type configView struct {
	Backend string `yaml:"backend"`
	Persona string `yaml:"persona"`
	OpenAI  struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`
	Ollama struct {
		Host  string `yaml:"host"`
		Model string `yaml:"model"`
	} `yaml:"ollama"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	if config.Exists() {
		fmt.Println(ui.MutedStyle.Render("Config file: " + path))
	} else {
		fmt.Println(ui.MutedStyle.Render("Config file: " + path + " (not found, using defaults)"))
	}
	fmt.Println()

	var view configView
	view.Backend = cfg.Backend
	view.Persona = cfg.Persona
	view.OpenAI.APIKey = maskKey(cfg.OpenAI.APIKey)
	view.OpenAI.Model = cfg.OpenAI.Model
	view.Ollama.Host = cfg.Ollama.Host
	view.Ollama.Model = cfg.Ollama.Model

	out, err := yaml.Marshal(view)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
