package tennis

// MatchType represents the format of a match.
type MatchType string

const (
	// MatchTypeAll represents all match types combined. Only valid as a filter.
	MatchTypeAll MatchType = "all"
	// MatchTypeSingles represents a one-on-one match.
	MatchTypeSingles MatchType = "singles"
	// MatchTypeDoubles represents a two-on-two match.
	MatchTypeDoubles MatchType = "doubles"
)

// PlayingStyle describes how a player approaches the game.
type PlayingStyle string

const (
	StyleAggressiveBaseliner PlayingStyle = "aggressive_baseliner"
	StyleServeAndVolley      PlayingStyle = "serve_and_volley"
	StyleCounterpuncher      PlayingStyle = "counterpuncher"
	StyleAllCourt            PlayingStyle = "all_court"
)

// Player represents a registered club member.
type Player struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Age           int          `json:"age"`
	PlayingStyle  PlayingStyle `json:"playing_style"`
	RankingPoints int          `json:"ranking_points"`
	Active        bool         `json:"active"`
}

// MatchRecord represents a completed match. Winner2ID and Loser2ID are empty
// for singles and both set for doubles. Participant fields are immutable once
// recorded; only the score and date may be corrected afterwards.
type MatchRecord struct {
	ID        string    `json:"id"`
	MatchType MatchType `json:"match_type"`
	Winner1ID string    `json:"winner1_id"`
	Winner2ID string    `json:"winner2_id,omitempty"`
	Loser1ID  string    `json:"loser1_id"`
	Loser2ID  string    `json:"loser2_id,omitempty"`
	Score     string    `json:"score"`
	MatchDate int64     `json:"match_date"`
	CreatedAt int64     `json:"created_at"`
}

// Side identifies one side of a match when deriving a winner from set scores.
type Side int

const (
	// SideNone means neither side won, e.g. a tied set.
	SideNone Side = iota
	// SideA is the side whose score is written first in each set token.
	SideA
	// SideB is the side whose score is written second.
	SideB
)

// TiePolicy decides the match winner when both sides take the same number of
// sets. The stored score cannot express a winner in that case, so the policy
// must be an explicit choice rather than an implicit default.
type TiePolicy string

const (
	// TieSideA credits the first side. This is the default.
	TieSideA TiePolicy = "side_a"
	// TieSideB credits the second side.
	TieSideB TiePolicy = "side_b"
	// TieError rejects the input instead of guessing.
	TieError TiePolicy = "error"
)
