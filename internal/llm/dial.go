package llm

import (
	"context"
	"fmt"
	"os"
)

// Backend ids carried by the selector map onto transports here. The
// locally hosted models go through Ollama; the hosted ones through
// whatever OpenAI-compatible gateway the environment points at.
var ollamaModels = map[string]string{
	"gemma-3n-2b":   "gemma3n:e2b",
	"codellama-34b": "codellama:34b",
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Dial builds a client for the given backend id from environment
// configuration. Unknown ids fail rather than guess a transport.
func Dial(ctx context.Context, backendID string) (Client, error) {
	if model, ok := ollamaModels[backendID]; ok {
		return NewOllamaClient(envOr("OLLAMA_HOST", "http://localhost:11434"), model)
	}
	switch backendID {
	case "gpt-4":
		return NewOpenAIClient(os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_API_KEY"), "gpt-4"), nil
	case "claude-3-sonnet":
		return NewOpenAIClient(os.Getenv("ANTHROPIC_BASE_URL"), os.Getenv("ANTHROPIC_API_KEY"), "claude-3-sonnet"), nil
	case "gemini":
		return NewGeminiClient(ctx, envOr("GEMINI_MODEL", "gemini-2.0-flash"))
	}
	return nil, fmt.Errorf("llm: no transport for backend %q", backendID)
}
