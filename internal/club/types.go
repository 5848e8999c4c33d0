package club

import (
	"database/sql"
	"sync"

	"github.com/courtkeep/courtkeep/internal/tennis"
)

// store handles all database operations for the club.
type store struct {
	db        *sql.DB
	mu        sync.RWMutex
	tiePolicy tennis.TiePolicy
}

// MatchSubmission is the payload for recording a completed match. The score
// must already be normalized (higher sub-score first per set); unnormalized
// submissions are rejected rather than rewritten.
type MatchSubmission struct {
	MatchType tennis.MatchType `json:"match_type"`
	Winner1ID string           `json:"winner1_id"`
	Winner2ID string           `json:"winner2_id,omitempty"`
	Loser1ID  string           `json:"loser1_id"`
	Loser2ID  string           `json:"loser2_id,omitempty"`
	Score     string           `json:"score"`
	MatchDate int64            `json:"match_date"`
}
