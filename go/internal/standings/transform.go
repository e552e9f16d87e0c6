package standings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcdev12/fantasyetl/go/clients/yahoo_fantasy_client"
	"github.com/mcdev12/fantasyetl/go/internal/models"
)

// teamToRow flattens one standings team into an export row. Yahoo's nested
// outcome_totals and streak structs become primitive columns.
func teamToRow(team yahoo_fantasy_client.StandingsTeam) models.StandingsRow {
	st := team.Standings
	totals := st.OutcomeTotals

	return models.StandingsRow{
		Rank:          st.Rank,
		TeamKey:       team.TeamKey,
		Team:          team.Name,
		Wins:          totals.Wins,
		Losses:        totals.Losses,
		Ties:          totals.Ties,
		WinPct:        winPct(totals),
		PointsFor:     st.PointsFor,
		PointsAgainst: st.PointsAgainst,
		Streak:        compactStreak(st.Streak),
		PlayoffSeed:   parseSeed(st.PlayoffSeed),
	}
}

// winPct uses Yahoo's percentage when present; early in the season the field
// comes back empty, so fall back to computing it from the outcome totals.
func winPct(totals yahoo_fantasy_client.OutcomeTotals) float64 {
	if pct, err := strconv.ParseFloat(strings.TrimSpace(totals.Percentage), 64); err == nil {
		return pct
	}
	games := totals.Wins + totals.Losses + totals.Ties
	if games == 0 {
		return 0
	}
	return (float64(totals.Wins) + 0.5*float64(totals.Ties)) / float64(games)
}

// compactStreak renders {type: win, value: 3} as "W3".
func compactStreak(streak yahoo_fantasy_client.Streak) string {
	if streak.Value == 0 {
		return ""
	}
	var letter string
	switch strings.ToLower(streak.Type) {
	case "win":
		letter = "W"
	case "loss":
		letter = "L"
	case "tie":
		letter = "T"
	default:
		return ""
	}
	return fmt.Sprintf("%s%d", letter, streak.Value)
}

func parseSeed(raw string) *int {
	seed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &seed
}
