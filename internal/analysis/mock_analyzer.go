package analysis

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resume-analyzer/internal/document"
)

// MockAnalyzer is a mock implementation of Analyzer using testify/mock.
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, doc document.Document) (Result, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(Result), args.Error(1)
}

func (m *MockAnalyzer) AnalyzeURL(ctx context.Context, rawURL string) (Result, error) {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(Result), args.Error(1)
}
