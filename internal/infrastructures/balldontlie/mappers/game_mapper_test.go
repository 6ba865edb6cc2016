package mappers

import (
	"testing"
	"time"

	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/dto"
)

func game(homeID, awayID int64, homeScore, awayScore int) dto.Game {
	return dto.Game{
		ID:               1,
		Date:             "2025-01-02",
		HomeTeam:         dto.Team{ID: homeID, FullName: "Home Side"},
		VisitorTeam:      dto.Team{ID: awayID, FullName: "Away Side"},
		HomeTeamScore:    homeScore,
		VisitorTeamScore: awayScore,
	}
}

func TestToGameRecord_Results(t *testing.T) {
	tests := []struct {
		name         string
		game         dto.Game
		teamID       int64
		wantResult   models.Result
		wantOpponent string
	}{
		{name: "home_team_wins", game: game(14, 2, 110, 102), teamID: 14, wantResult: models.ResultWin, wantOpponent: "Away Side"},
		{name: "away_team_wins", game: game(2, 14, 99, 104), teamID: 14, wantResult: models.ResultWin, wantOpponent: "Home Side"},
		{name: "home_team_loses", game: game(14, 2, 90, 104), teamID: 14, wantResult: models.ResultLoss, wantOpponent: "Away Side"},
		{name: "away_team_loses", game: game(2, 14, 120, 104), teamID: 14, wantResult: models.ResultLoss, wantOpponent: "Home Side"},
		{name: "level_score_never_draws", game: game(14, 2, 0, 0), teamID: 14, wantResult: models.ResultLoss, wantOpponent: "Away Side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToGameRecord(tt.game, tt.teamID)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.Result != tt.wantResult {
				t.Fatalf("expected %s, got %s", tt.wantResult, got.Result)
			}
			if got.Result == models.ResultDraw {
				t.Fatal("basketball must never produce a draw")
			}
			if got.Opponent != tt.wantOpponent {
				t.Fatalf("expected opponent %q, got %q", tt.wantOpponent, got.Opponent)
			}
			if got.Score.Home != tt.game.HomeTeamScore || got.Score.Away != tt.game.VisitorTeamScore {
				t.Fatalf("unexpected score %+v", got.Score)
			}
		})
	}
}

func TestToGameRecord_PrefersDateTime(t *testing.T) {
	g := game(14, 2, 1, 0)
	g.DateTime = "2025-01-05T23:00:00.000Z"

	got, err := ToGameRecord(g, 14)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Date.Equal(time.Date(2025, 1, 5, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got.Date)
	}
}

func TestToGameRecord_InvalidDate(t *testing.T) {
	g := game(14, 2, 1, 0)
	g.Date = "yesterday"

	if _, err := ToGameRecord(g, 14); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestIsBetween(t *testing.T) {
	if !IsBetween(game(14, 2, 0, 0), 2, 14) {
		t.Fatal("expected reversed pairing to match")
	}
	if IsBetween(game(14, 5, 0, 0), 14, 2) {
		t.Fatal("expected unrelated opponent not to match")
	}
}
