package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/tennis"
)

// MatchRow is a flat, human-facing view of one match for tabular export.
type MatchRow struct {
	Time  string
	Type  string
	Team1 string
	Team2 string
	Score string
}

// FeeRow is a flat view of one player's fee for tabular export. Amounts stay
// raw numerics; currency formatting belongs to the consumer.
type FeeRow struct {
	Player   string
	Matches  int
	Wins     int
	Draws    int
	Losses   int
	BaseFee  int64
	BetFee   int64
	TotalFee int64
}

// ToMatchRows flattens matches into export rows, resolving participant names
// from the player snapshot. Unknown references fall back to the raw ID so a
// stale snapshot never loses a row.
func ToMatchRows(matches []tennis.MatchRecord, players []tennis.Player) []MatchRow {
	names := nameIndex(players)

	rows := make([]MatchRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, MatchRow{
			Time:  time.Unix(m.MatchDate, 0).Format("2006-01-02 15:04"),
			Type:  string(m.MatchType),
			Team1: teamName(names, m.Winner1ID, m.Winner2ID),
			Team2: teamName(names, m.Loser1ID, m.Loser2ID),
			Score: m.Score,
		})
	}
	return rows
}

// ToFeeRows flattens computed fees into export rows.
func ToFeeRows(playerFees []fees.PlayerFee) []FeeRow {
	rows := make([]FeeRow, 0, len(playerFees))
	for _, f := range playerFees {
		name := f.PlayerName
		if name == "" {
			name = f.PlayerID
		}
		rows = append(rows, FeeRow{
			Player:   name,
			Matches:  f.TotalMatches,
			Wins:     f.Wins,
			Draws:    f.Draws,
			Losses:   f.Losses,
			BaseFee:  f.BaseFee,
			BetFee:   f.BetFee,
			TotalFee: f.TotalFee,
		})
	}
	return rows
}

func nameIndex(players []tennis.Player) map[string]string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	return names
}

func teamName(names map[string]string, id1, id2 string) string {
	parts := make([]string, 0, 2)
	for _, id := range []string{id1, id2} {
		if id == "" {
			continue
		}
		if name, ok := names[id]; ok && name != "" {
			parts = append(parts, name)
		} else {
			parts = append(parts, id)
		}
	}
	return strings.Join(parts, " & ")
}

var (
	matchHeader = []string{"Time", "Type", "Team1", "Team2", "Score"}
	feeHeader   = []string{"Player", "Matches", "Wins", "Draws", "Losses", "BaseFee", "BetFee", "TotalFee"}
)

// MatchesCSV serializes match rows. Zero rows produce empty output.
func MatchesCSV(rows []MatchRow) string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Time, r.Type, r.Team1, r.Team2, r.Score})
	}
	return joinCSV(matchHeader, records)
}

// FeesCSV serializes fee rows. Zero rows produce empty output.
func FeesCSV(rows []FeeRow) string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Player,
			fmt.Sprintf("%d", r.Matches),
			fmt.Sprintf("%d", r.Wins),
			fmt.Sprintf("%d", r.Draws),
			fmt.Sprintf("%d", r.Losses),
			fmt.Sprintf("%d", r.BaseFee),
			fmt.Sprintf("%d", r.BetFee),
			fmt.Sprintf("%d", r.TotalFee),
		})
	}
	return joinCSV(feeHeader, records)
}

// joinCSV builds the CSV document: header first, rows newline-joined, no
// trailing newline. Fields containing the delimiter are wrapped in double
// quotes with embedded quotes doubled.
func joinCSV(header []string, records [][]string) string {
	if len(records) == 0 {
		return ""
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, record := range records {
		escaped := make([]string, len(record))
		for i, field := range record {
			escaped[i] = escapeField(field)
		}
		lines = append(lines, strings.Join(escaped, ","))
	}
	return strings.Join(lines, "\n")
}

func escapeField(field string) string {
	if !strings.Contains(field, ",") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
