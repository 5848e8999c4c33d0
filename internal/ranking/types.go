package ranking

import "time"

// PlayerStat is a player's aggregate over a filtered match set. It is derived
// on every query and never persisted.
type PlayerStat struct {
	PlayerID    string  `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	Points      int     `json:"points"`
	Wins        int     `json:"wins"`
	Draws       int     `json:"draws"`
	Losses      int     `json:"losses"`
	Total       int     `json:"total"`
	WinRate     float64 `json:"win_rate"`
	NotLoseRate float64 `json:"not_lose_rate"`
}

// SortField selects the metric a ranking is ordered by.
type SortField string

const (
	SortPoints      SortField = "points"
	SortTotal       SortField = "total"
	SortWins        SortField = "wins"
	SortDraws       SortField = "draws"
	SortLosses      SortField = "losses"
	SortWinRate     SortField = "winRate"
	SortNotLoseRate SortField = "notLoseRate"
)

// Direction toggles sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter enumerates the supported filter dimensions explicitly. From/To bound
// the match date inclusively on both ends; nil means unbounded. MatchType
// "all" (or empty) passes every type. PlayerID keeps only matches the player
// took part in. Query narrows aggregated rows by player name and does not
// affect match selection.
type Filter struct {
	From      *time.Time
	To        *time.Time
	MatchType string
	PlayerID  string
	Query     string
}
