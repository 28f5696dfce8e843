package llm

import (
	"context"
	"fmt"
	"net/url"

	ollama "github.com/JexSrs/go-ollama"
)

const ollamaSystemPrompt = "You are a source code conversion assistant. " +
	"Reply with the converted code only, no commentary."

// OllamaClient serves the locally hosted models (Gemma, CodeLlama)
// through the Ollama HTTP API.
type OllamaClient struct {
	cli   *ollama.Ollama
	model string
}

func NewOllamaClient(host, model string) (*OllamaClient, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	return &OllamaClient{cli: ollama.New(*u), model: model}, nil
}

func (o *OllamaClient) Name() string { return "Ollama:" + o.model }
func (o *OllamaClient) Close() error { return nil }

// Generate runs the model call in a goroutine so the caller's context
// can cut it off; the library itself has no context plumbing. On cancel
// the abandoned call finishes in the background and its result is
// dropped.
func (o *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	type genResult struct {
		out string
		err error
	}
	ch := make(chan genResult, 1)
	go func() {
		res, err := o.cli.Generate(
			o.cli.Generate.WithModel(o.model),
			o.cli.Generate.WithSystem(ollamaSystemPrompt),
			o.cli.Generate.WithPrompt(prompt),
		)
		switch {
		case err != nil:
			ch <- genResult{err: fmt.Errorf("ollama generate: %w", err)}
		case !res.Done:
			ch <- genResult{err: fmt.Errorf("ollama generate: response not done, unexpected streaming")}
		case res.Response == "":
			ch <- genResult{err: ErrEmptyResponse}
		default:
			ch <- genResult{out: stripFences(res.Response)}
		}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("ollama generate: %w", ctx.Err())
	case r := <-ch:
		return r.out, r.err
	}
}
