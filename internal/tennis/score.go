package tennis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidScore is returned when a score string cannot be parsed.
var ErrInvalidScore = errors.New("invalid score format")

// Draw sentinel scores. A match whose whole stored score equals one of these
// counts as a draw for every participant. This is a club convention for
// time-boxed sessions that end level, not a real tennis scoring rule.
const (
	drawScoreFiveAll = "5-5"
	drawScoreSixAll  = "6-6"
)

// IsDraw reports whether a stored score marks the match as a draw. The check
// is an exact match on the whole score field, not per set.
func IsDraw(score string) bool {
	return score == drawScoreFiveAll || score == drawScoreSixAll
}

// ParseScore parses a comma-separated score string ("6-4,7-5") into per-set
// [a, b] pairs. Each sub-score must be a non-negative integer of at most two
// digits. Invalid input is rejected rather than coerced.
func ParseScore(score string) ([][2]int, error) {
	if strings.TrimSpace(score) == "" {
		return nil, fmt.Errorf("%w: empty score", ErrInvalidScore)
	}

	tokens := strings.Split(score, ",")
	sets := make([][2]int, 0, len(tokens))
	for _, token := range tokens {
		a, b, err := parseSetToken(token)
		if err != nil {
			return nil, err
		}
		sets = append(sets, [2]int{a, b})
	}
	return sets, nil
}

func parseSetToken(token string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: bad set token %q", ErrInvalidScore, token)
	}

	scores := make([]int, 2)
	for i, part := range parts {
		if len(part) == 0 || len(part) > 2 {
			return 0, 0, fmt.Errorf("%w: bad sub-score %q", ErrInvalidScore, part)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("%w: bad sub-score %q", ErrInvalidScore, part)
		}
		scores[i] = n
	}
	return scores[0], scores[1], nil
}

// NormalizeScore rewrites each set token so the larger number comes first
// ("4-6" becomes "6-4"). The transform is applied per token, is idempotent
// and does not depend on token order. Invalid scores are rejected.
func NormalizeScore(score string) (string, error) {
	sets, err := ParseScore(score)
	if err != nil {
		return "", err
	}

	tokens := make([]string, len(sets))
	for i, set := range sets {
		hi, lo := set[0], set[1]
		if lo > hi {
			hi, lo = lo, hi
		}
		tokens[i] = fmt.Sprintf("%d-%d", hi, lo)
	}
	return strings.Join(tokens, ","), nil
}

// SetWinner returns which side took a single set. Equal sub-scores yield
// SideNone; such a set counts for neither side.
func SetWinner(a, b int) Side {
	switch {
	case a > b:
		return SideA
	case b > a:
		return SideB
	default:
		return SideNone
	}
}

// MatchWinner determines the winning side from oriented per-set scores, where
// the first number of every pair belongs to side A. The side with the most
// set wins takes the match; a tie is resolved by the given policy.
func MatchWinner(sets [][2]int, policy TiePolicy) (Side, error) {
	var a, b int
	for _, set := range sets {
		switch SetWinner(set[0], set[1]) {
		case SideA:
			a++
		case SideB:
			b++
		}
	}

	switch {
	case a > b:
		return SideA, nil
	case b > a:
		return SideB, nil
	}

	switch policy {
	case TieSideB:
		return SideB, nil
	case TieError:
		return SideNone, fmt.Errorf("sides tied at %d set(s) each", a)
	default:
		return SideA, nil
	}
}
