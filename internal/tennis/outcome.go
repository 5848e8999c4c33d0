package tennis

import "fmt"

// Participates reports whether the player appears in any of the four
// participant fields of the match.
func Participates(m MatchRecord, playerID string) bool {
	if playerID == "" {
		return false
	}
	return m.Winner1ID == playerID || m.Winner2ID == playerID ||
		m.Loser1ID == playerID || m.Loser2ID == playerID
}

// WonBy reports whether the match counts as a win for the player. A draw is
// never a win, regardless of which side the player was recorded on.
func WonBy(m MatchRecord, playerID string) bool {
	if IsDraw(m.Score) || playerID == "" {
		return false
	}
	return m.Winner1ID == playerID || m.Winner2ID == playerID
}

// LostBy reports whether the match counts as a loss for the player. A draw is
// never a loss.
func LostBy(m MatchRecord, playerID string) bool {
	if IsDraw(m.Score) || playerID == "" {
		return false
	}
	return m.Loser1ID == playerID || m.Loser2ID == playerID
}

// Validate checks the structural invariants of a match record: participant
// fields consistent with the match type, no player on both sides, and a score
// that parses and is already normalized (higher sub-score first per set).
func Validate(m MatchRecord) error {
	if m.Winner1ID == "" || m.Loser1ID == "" {
		return fmt.Errorf("winner1_id and loser1_id are required")
	}

	switch m.MatchType {
	case MatchTypeSingles:
		if m.Winner2ID != "" || m.Loser2ID != "" {
			return fmt.Errorf("singles match cannot have second players")
		}
	case MatchTypeDoubles:
		if m.Winner2ID == "" || m.Loser2ID == "" {
			return fmt.Errorf("doubles match requires winner2_id and loser2_id")
		}
	default:
		return fmt.Errorf("unknown match type %q", m.MatchType)
	}

	seen := make(map[string]bool)
	for _, id := range []string{m.Winner1ID, m.Winner2ID, m.Loser1ID, m.Loser2ID} {
		if id == "" {
			continue
		}
		if seen[id] {
			return fmt.Errorf("player %s appears more than once", id)
		}
		seen[id] = true
	}

	normalized, err := NormalizeScore(m.Score)
	if err != nil {
		return err
	}
	if normalized != m.Score {
		return fmt.Errorf("score %q is not normalized, expected %q", m.Score, normalized)
	}
	return nil
}

// ReassignSides applies a score correction to a match and re-derives the
// winner/loser assignment from the edited set scores. The edited score is
// oriented: the first sub-score of every set belongs to the side currently
// recorded as winners. If the other side took more sets, the winner and loser
// pairs swap. The participant set itself never changes.
func ReassignSides(m *MatchRecord, editedScore string, policy TiePolicy) error {
	normalized, err := NormalizeScore(editedScore)
	if err != nil {
		return err
	}

	// A draw has no winning side, so the recorded sides stay as they are.
	if IsDraw(normalized) {
		m.Score = normalized
		return nil
	}

	sets, err := ParseScore(editedScore)
	if err != nil {
		return err
	}
	winner, err := MatchWinner(sets, policy)
	if err != nil {
		return err
	}

	if winner == SideB {
		m.Winner1ID, m.Loser1ID = m.Loser1ID, m.Winner1ID
		m.Winner2ID, m.Loser2ID = m.Loser2ID, m.Winner2ID
	}
	m.Score = normalized
	return nil
}
