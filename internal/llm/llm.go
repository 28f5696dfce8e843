// Package llm holds the text-generation clients the orchestrator can
// delegate conversions to. Every client speaks the same single-shot
// contract: one rendered prompt in, one code block out.
package llm

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyResponse = errors.New("llm: empty response from model")

type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// stripFences removes the markdown code fences models like to wrap
// answers in, including the language tag on the opening fence.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 && !strings.ContainsAny(strings.TrimSpace(s[:i]), " \t") {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
