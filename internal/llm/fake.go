package llm

import "context"

// FakeClient returns scripted responses for offline/testing use.
type FakeClient struct {
	Reply string
	Err   error
	Calls int
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.Calls++
	if f.Err != nil {
		return "", f.Err
	}
	if f.Reply == "" {
		return "", ErrEmptyResponse
	}
	return f.Reply, nil
}
