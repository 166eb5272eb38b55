package assistant

import (
	"context"
	"fmt"
)

// TemplateAnalyzer stands in for a real file-analysis backend: the
// description only embeds the filename, the content is never inspected.
type TemplateAnalyzer struct{}

func NewTemplateAnalyzer() *TemplateAnalyzer {
	return &TemplateAnalyzer{}
}

func (a *TemplateAnalyzer) Analyze(ctx context.Context, fileName, localPath string) (string, error) {
	return fmt.Sprintf("Analysis of %s completed.", fileName), nil
}

// TemplateSearcher stands in for a real web-search backend.
type TemplateSearcher struct{}

func NewTemplateSearcher() *TemplateSearcher {
	return &TemplateSearcher{}
}

func (s *TemplateSearcher) Search(ctx context.Context, query string) (string, error) {
	return fmt.Sprintf("Results for '%s' retrieved.", query), nil
}
