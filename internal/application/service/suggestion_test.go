package service

import (
	"strings"
	"testing"

	"github.com/ozzus/bet-tracker/internal/domain/models"
)

func results(rs ...models.Result) []models.GameRecord {
	out := make([]models.GameRecord, 0, len(rs))
	for _, r := range rs {
		out = append(out, models.GameRecord{Result: r})
	}
	return out
}

func TestSuggest_HighWinRate(t *testing.T) {
	w, l := models.ResultWin, models.ResultLoss
	got := Suggest(nil, results(w, w, w, l, w), "Lakers", "FanDuel")

	want := "Suggest betting on Lakers to win (high win rate: 80%). Check FanDuel odds."
	if got.Text != want {
		t.Fatalf("unexpected text:\n got: %s\nwant: %s", got.Text, want)
	}
	if got.Wins != 4 || got.Games != 5 {
		t.Fatalf("unexpected counts: wins=%d games=%d", got.Wins, got.Games)
	}
}

func TestSuggest_ExactlySixtyPercentIsNotHigh(t *testing.T) {
	w, l := models.ResultWin, models.ResultLoss
	got := Suggest(nil, results(w, w, w, l, l), "Lakers", "FanDuel")

	if got.Text != "No strong suggestion—teams are evenly matched." {
		t.Fatalf("unexpected text: %s", got.Text)
	}
	if got.WinRate != 0.6 {
		t.Fatalf("unexpected win rate: %v", got.WinRate)
	}
}

func TestSuggest_NoData(t *testing.T) {
	got := Suggest(models.OddsPayload{}, nil, "Lakers", "FanDuel")
	if got.Text != "No data for suggestion." {
		t.Fatalf("unexpected text: %s", got.Text)
	}
	if got.Games != 0 {
		t.Fatalf("unexpected games: %d", got.Games)
	}
}

func TestSuggest_DrawsCountAgainstWinRate(t *testing.T) {
	w, d := models.ResultWin, models.ResultDraw
	got := Suggest(nil, results(w, w, d, d), "Liverpool", "FanDuel")

	if got.Text != evenMatchSuggestion {
		t.Fatalf("unexpected text: %s", got.Text)
	}
	if got.WinRate != 0.5 {
		t.Fatalf("unexpected win rate: %v", got.WinRate)
	}
}

func TestSuggest_IgnoresOdds(t *testing.T) {
	w := models.ResultWin
	records := results(w, w, w)
	odds := models.OddsPayload{[]byte(`{"id":"e1","home_team":"A","away_team":"B"}`)}

	with := Suggest(odds, records, "Celtics", "FanDuel")
	without := Suggest(nil, records, "Celtics", "FanDuel")
	if with != without {
		t.Fatalf("odds changed the suggestion: %+v vs %+v", with, without)
	}
}

func TestSuggest_DefaultsBookmakerTitle(t *testing.T) {
	got := Suggest(nil, results(models.ResultWin), "Bulls", "")
	if !strings.HasSuffix(got.Text, "Check FanDuel odds.") {
		t.Fatalf("unexpected text: %s", got.Text)
	}
}
