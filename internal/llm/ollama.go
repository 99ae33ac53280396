package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/averille/explain/internal/httpx"
)

// DefaultOllamaHost is where a locally running Ollama server listens.
const DefaultOllamaHost = "http://localhost:11434"

// OllamaProvider streams chat completions from a local Ollama server
// using its native NDJSON protocol.
type OllamaProvider struct {
	client *httpx.Client
	model  string
}

func NewOllamaProvider(host, model string) *OllamaProvider {
	if host == "" {
		host = DefaultOllamaHost
	}
	return &OllamaProvider{
		client: httpx.NewClient(host, httpx.WithMaxRetries(2)),
		model:  model,
	}
}

func (p *OllamaProvider) Name() string {
	return fmt.Sprintf("Ollama (%s)", p.model)
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatChunk struct {
	Message ollamaChatMessage `json:"message"`
	Done    bool              `json:"done"`
	Error   string            `json:"error"`
}

func (p *OllamaProvider) Stream(ctx context.Context, req Request) (Stream, error) {
	return newEventStream(ctx, func(ctx context.Context, events chan<- Event) error {
		messages := make([]ollamaChatMessage, 0, len(req.Messages))
		for _, msg := range req.Messages {
			messages = append(messages, ollamaChatMessage{
				Role:    string(msg.Role),
				Content: msg.Content,
			})
		}

		model := req.Model
		if model == "" {
			model = p.model
		}
		payload := map[string]any{
			"model":    model,
			"messages": messages,
			"stream":   true,
		}

		if req.Debug {
			fmt.Fprintln(os.Stderr, "=== DEBUG: Ollama Stream Request ===")
			fmt.Fprintf(os.Stderr, "Provider: %s\n", p.Name())
			fmt.Fprintf(os.Stderr, "Messages: %d\n", len(messages))
			for _, msg := range req.Messages {
				fmt.Fprintf(os.Stderr, "  [%s] %s\n", msg.Role, preview(msg.Content, 200))
			}
			fmt.Fprintln(os.Stderr, "====================================")
		}

		body, err := p.client.PostStream(ctx, "/api/chat", payload)
		if err != nil {
			return &BackendError{Backend: "ollama", Op: "chat", Err: err}
		}
		defer body.Close()

		scanner := bufio.NewScanner(body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			var chunk ollamaChatChunk
			if err := json.Unmarshal(line, &chunk); err != nil {
				return &BackendError{Backend: "ollama", Op: "chat", Err: fmt.Errorf("malformed stream response: %w", err)}
			}
			if chunk.Error != "" {
				return &BackendError{Backend: "ollama", Op: "chat", Err: fmt.Errorf("%s", chunk.Error)}
			}
			if chunk.Message.Content != "" {
				events <- Event{Type: EventTextDelta, Text: chunk.Message.Content}
			}
			if chunk.Done {
				events <- Event{Type: EventDone}
				return nil
			}
		}
		if err := scanner.Err(); err != nil {
			return &BackendError{Backend: "ollama", Op: "chat", Err: err}
		}
		// Server closed the connection without a done marker.
		events <- Event{Type: EventDone}
		return nil
	}), nil
}

// ModelInfo describes one model known to the local server.
type ModelInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ListModels returns the models available on the local server.
func (p *OllamaProvider) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var result struct {
		Models []ModelInfo `json:"models"`
	}
	if err := p.client.GetJSON(ctx, "/api/tags", &result); err != nil {
		return nil, &BackendError{Backend: "ollama", Op: "models", Err: err}
	}
	return result.Models, nil
}
