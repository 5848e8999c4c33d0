package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchRecorded  EventType = "match-recorded"
	EventScoreCorrected EventType = "score-corrected"
)

// MatchRecordedEvent is published whenever a match is recorded or its score
// corrected. Consumers re-read the match from the store; the event only
// carries enough to identify it and render a notification.
type MatchRecordedEvent struct {
	MatchID   string `msgpack:"match_id"`
	MatchType string `msgpack:"match_type"`
	Score     string `msgpack:"score"`
	MatchDate int64  `msgpack:"match_date"`
}
