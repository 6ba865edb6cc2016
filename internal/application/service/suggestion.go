package service

import (
	"fmt"
	"strings"

	"github.com/ozzus/bet-tracker/internal/domain/models"
)

const (
	noDataSuggestion     = "No data for suggestion."
	evenMatchSuggestion  = "No strong suggestion—teams are evenly matched."
	highWinRateSuggested = "Suggest betting on %s to win (high win rate: %.0f%%). Check %s odds."
)

// Suggest derives a betting hint from the share of wins in records. A team is
// recommended only when its win rate is strictly above 60%. odds is accepted
// for a future odds-aware rule and does not affect the result.
func Suggest(odds models.OddsPayload, records []models.GameRecord, team, bookmakerTitle string) models.Suggestion {
	_ = odds

	if len(records) == 0 {
		return models.Suggestion{Text: noDataSuggestion}
	}

	wins := 0
	for _, r := range records {
		if r.Result == models.ResultWin {
			wins++
		}
	}

	games := len(records)
	rate := float64(wins) / float64(games)
	out := models.Suggestion{
		WinRate: rate,
		Games:   games,
		Wins:    wins,
	}

	// wins/games > 3/5 without float rounding at the boundary.
	if wins*5 > games*3 {
		if strings.TrimSpace(bookmakerTitle) == "" {
			bookmakerTitle = models.BookmakerTitle("")
		}
		out.Text = fmt.Sprintf(highWinRateSuggested, team, rate*100, bookmakerTitle)
		return out
	}

	out.Text = evenMatchSuggestion
	return out
}
