package inference

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resume-analyzer/internal/document"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Generate(ctx context.Context, prompt string, attachment document.Payload, schema *Schema) (string, error) {
	args := m.Called(ctx, prompt, attachment, schema)
	return args.String(0), args.Error(1)
}
