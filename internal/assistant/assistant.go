package assistant

import "context"

// Responder produces one text response for one prompt. Each call is
// stateless: no system prompt, no conversation history.
type Responder interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// Analyzer describes a downloaded file. The current backend is a template;
// the interface exists so a real analysis service can replace it without
// touching the handlers.
type Analyzer interface {
	Analyze(ctx context.Context, fileName, localPath string) (string, error)
}

// Searcher answers a free-text web search query.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}
