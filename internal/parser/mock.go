package parser

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the MatchParser interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	ParseMatchTextFunc func(ctx context.Context, text string) (ParsedMatch, error)

	// Call records
	ParseMatchTextCalls []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) ParseMatchText(ctx context.Context, text string) (ParsedMatch, error) {
	m.mu.Lock()
	m.ParseMatchTextCalls = append(m.ParseMatchTextCalls, text)
	m.mu.Unlock()
	if m.ParseMatchTextFunc != nil {
		return m.ParseMatchTextFunc(ctx, text)
	}
	return ParsedMatch{}, nil
}
