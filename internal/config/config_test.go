package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPLAIN_TEST_KEY", "secret-value")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"braced var", "${EXPLAIN_TEST_KEY}", "secret-value"},
		{"bare var", "$EXPLAIN_TEST_KEY", "secret-value"},
		{"literal", "sk-literal", "sk-literal"},
		{"empty", "", ""},
		{"unset braced var", "${EXPLAIN_TEST_UNSET}", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := expandEnv(tc.in); got != tc.want {
				t.Errorf("expandEnv(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OLLAMA_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "openai" {
		t.Errorf("backend = %q, want openai", cfg.Backend)
	}
	if cfg.Persona != DefaultPersona {
		t.Errorf("persona = %q, want default", cfg.Persona)
	}
	if cfg.Ollama.Host != "http://localhost:11434" {
		t.Errorf("ollama host = %q", cfg.Ollama.Host)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OLLAMA_HOST", "")
	t.Setenv("MY_KEY_VAR", "sk-from-env")

	configDir := filepath.Join(dir, "explain")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `backend: ollama
persona: Answer like a pirate.
openai:
  api_key: ${MY_KEY_VAR}
  model: gpt-4o-mini
ollama:
  model: gemma3:4b
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "ollama" {
		t.Errorf("backend = %q, want ollama", cfg.Backend)
	}
	if cfg.Persona != "Answer like a pirate." {
		t.Errorf("persona = %q", cfg.Persona)
	}
	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("api key = %q, want expanded env var", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q", cfg.OpenAI.Model)
	}
	if cfg.Ollama.Model != "gemma3:4b" {
		t.Errorf("ollama model = %q", cfg.Ollama.Model)
	}
	// Host not set in file, default applies.
	if cfg.Ollama.Host != "http://localhost:11434" {
		t.Errorf("ollama host = %q", cfg.Ollama.Host)
	}
}

func TestEnvFallbackForAPIKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-ambient")
	t.Setenv("OLLAMA_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OpenAI.APIKey != "sk-ambient" {
		t.Errorf("api key = %q, want env fallback", cfg.OpenAI.APIKey)
	}
}
