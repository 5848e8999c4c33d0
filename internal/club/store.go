package club

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/google/uuid"
)

// New creates a new ClubStore. The tie policy is used when a score correction
// leaves both sides with the same number of sets.
func New(db *sql.DB, tiePolicy tennis.TiePolicy) ClubStore {
	return &store{
		db:        db,
		tiePolicy: tiePolicy,
	}
}

// UpsertPlayer inserts a new player or updates an existing one.
func (s *store) UpsertPlayer(p tennis.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertPlayerLocked(p)
}

// UpsertPlayers inserts or updates a batch of players in one transaction.
func (s *store) UpsertPlayers(players []tennis.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, age, playing_style, ranking_points, active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			playing_style = excluded.playing_style,
			ranking_points = excluded.ranking_points,
			active = excluded.active;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name, p.Age, string(p.PlayingStyle), p.RankingPoints, p.Active); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

func (s *store) upsertPlayerLocked(p tennis.Player) error {
	_, err := s.db.Exec(`
		INSERT INTO players (id, name, age, playing_style, ranking_points, active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			playing_style = excluded.playing_style,
			ranking_points = excluded.ranking_points,
			active = excluded.active;
	`, p.ID, p.Name, p.Age, string(p.PlayingStyle), p.RankingPoints, p.Active)
	if err != nil {
		return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
	}
	return nil
}

// ListPlayers returns all players ordered by name.
func (s *store) ListPlayers() ([]tennis.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, age, playing_style, ranking_points, active
		FROM players ORDER BY name
	`)
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// GetPlayers returns the players matching the given IDs.
func (s *store) GetPlayers(playerIDs []string) ([]tennis.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(playerIDs) == 0 {
		return []tennis.Player{}, nil
	}

	query := "SELECT id, name, age, playing_style, ranking_points, active FROM players WHERE id IN (?" +
		repeatPlaceholder(len(playerIDs)-1) + ")"
	rows, err := s.db.Query(query, toAnySlice(playerIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// FindPlayerByName performs a case-insensitive fuzzy lookup, so "minjun"
// matches "Kim Minjun".
func (s *store) FindPlayerByName(name string) (*tennis.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, age, playing_style, ranking_points, active
		FROM players WHERE name LIKE ? COLLATE NOCASE LIMIT 1
	`, "%"+name+"%")

	p, err := scanPlayer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("player matching %q not found", name)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return p, nil
}

// SetPlayerActive toggles a player's active flag.
func (s *store) SetPlayerActive(playerID string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec("UPDATE players SET active = ? WHERE id = ?", active, playerID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("player %s not found", playerID)
	}
	return nil
}

func (s *store) IsKnownPlayer(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return false
	}
	return exists
}

// CreateMatch validates a submission and records it as a new match. The
// participant assignment is immutable afterwards; only the score and date can
// be corrected via UpdateMatchScore.
func (s *store) CreateMatch(sub MatchSubmission) (*tennis.MatchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match := tennis.MatchRecord{
		ID:        uuid.New().String(),
		MatchType: sub.MatchType,
		Winner1ID: sub.Winner1ID,
		Winner2ID: sub.Winner2ID,
		Loser1ID:  sub.Loser1ID,
		Loser2ID:  sub.Loser2ID,
		Score:     sub.Score,
		MatchDate: sub.MatchDate,
		CreatedAt: time.Now().Unix(),
	}
	if match.MatchDate == 0 {
		match.MatchDate = match.CreatedAt
	}
	if err := tennis.Validate(match); err != nil {
		return nil, err
	}

	_, err := s.db.Exec(`
		INSERT INTO matches (id, match_type, winner1_id, winner2_id, loser1_id, loser2_id, score, match_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, match.ID, string(match.MatchType), match.Winner1ID, nullable(match.Winner2ID),
		match.Loser1ID, nullable(match.Loser2ID), match.Score, match.MatchDate, match.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}

	log.Info("Recorded match", "matchID", match.ID, "type", match.MatchType, "score", match.Score)
	return &match, nil
}

// UpdateMatchScore corrects a match's score (and optionally its date) and
// re-derives the winner/loser assignment from the edited set scores. A
// matchDate of 0 keeps the stored date.
func (s *store) UpdateMatchScore(matchID, editedScore string, matchDate int64) (*tennis.MatchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.getMatchLocked(matchID)
	if err != nil {
		return nil, err
	}

	if err := tennis.ReassignSides(match, editedScore, s.tiePolicy); err != nil {
		return nil, err
	}
	if matchDate != 0 {
		match.MatchDate = matchDate
	}

	_, err = s.db.Exec(`
		UPDATE matches
		SET winner1_id = ?, winner2_id = ?, loser1_id = ?, loser2_id = ?, score = ?, match_date = ?
		WHERE id = ?
	`, match.Winner1ID, nullable(match.Winner2ID), match.Loser1ID, nullable(match.Loser2ID),
		match.Score, match.MatchDate, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update match %s: %w", matchID, err)
	}

	log.Info("Corrected match score", "matchID", matchID, "score", match.Score)
	return match, nil
}

// GetMatch retrieves a single match by ID.
func (s *store) GetMatch(matchID string) (*tennis.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMatchLocked(matchID)
}

func (s *store) getMatchLocked(matchID string) (*tennis.MatchRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, match_type, winner1_id, winner2_id, loser1_id, loser2_id, score, match_date, created_at
		FROM matches WHERE id = ?
	`, matchID)

	match, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("match %s not found", matchID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return match, nil
}

// ListMatches returns all matches in chronological order.
func (s *store) ListMatches() ([]tennis.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, match_type, winner1_id, winner2_id, loser1_id, loser2_id, score, match_date, created_at
		FROM matches ORDER BY match_date, created_at
	`)
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []tennis.MatchRecord
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

// DeleteMatch removes a single match.
func (s *store) DeleteMatch(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec("DELETE FROM matches WHERE id = ?", matchID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("match %s not found", matchID)
	}
	return nil
}

// Clear wipes players, matches and counters. Meant for tests and the
// explicit admin endpoint.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"matches", "players", "counters"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

type rowScanner interface{ Scan(...any) error }

func scanPlayer(scanner rowScanner) (*tennis.Player, error) {
	var (
		p     tennis.Player
		style string
	)
	if err := scanner.Scan(&p.ID, &p.Name, &p.Age, &style, &p.RankingPoints, &p.Active); err != nil {
		return nil, err
	}
	p.PlayingStyle = tennis.PlayingStyle(style)
	return &p, nil
}

func scanPlayers(rows *sql.Rows) ([]tennis.Player, error) {
	players := []tennis.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func scanMatch(scanner rowScanner) (*tennis.MatchRecord, error) {
	var (
		m                  tennis.MatchRecord
		matchType          string
		winner2ID, loser2ID sql.NullString
	)
	err := scanner.Scan(&m.ID, &matchType, &m.Winner1ID, &winner2ID, &m.Loser1ID, &loser2ID,
		&m.Score, &m.MatchDate, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.MatchType = tennis.MatchType(matchType)
	m.Winner2ID = winner2ID.String
	m.Loser2ID = loser2ID.String
	return &m, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func repeatPlaceholder(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += ", ?"
	}
	return out
}

func toAnySlice(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
