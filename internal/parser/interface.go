package parser

import "context"

// MatchParser defines the interface for turning free-form match text into a
// structured result. This allows for mock implementations to be used in tests.
type MatchParser interface {
	ParseMatchText(ctx context.Context, text string) (ParsedMatch, error)
}
