package parser

// ParsedMatch is the structured result extracted from a free-form line like
// "Minjun and Seoyeon beat Jiho and Haeun 6-4 7-5 yesterday". Names are as
// written by the submitter and still need to be resolved against the club's
// player roster.
type ParsedMatch struct {
	MatchType   string   `json:"match_type"`
	WinnerNames []string `json:"winner_names"`
	LoserNames  []string `json:"loser_names"`
	Score       string   `json:"score"`
	MatchDate   int64    `json:"match_date"`
}
