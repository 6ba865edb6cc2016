package mappers

import (
	"fmt"
	"time"

	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/infrastructures/apifootball/dto"
)

// ToGameRecord maps a fixture from the perspective of teamID. The second
// return value is false for fixtures without a fulltime score, which are
// still in progress or not started.
func ToGameRecord(f dto.Fixture, teamID int64) (models.GameRecord, bool, error) {
	fulltime := f.Score.Fulltime
	if fulltime.Home == nil || fulltime.Away == nil {
		return models.GameRecord{}, false, nil
	}

	date, err := parseFixtureDate(f.Fixture.Date)
	if err != nil {
		return models.GameRecord{}, false, fmt.Errorf("fixture %d: %w", f.Fixture.ID, err)
	}

	score := models.Score{Home: *fulltime.Home, Away: *fulltime.Away}
	if f.Goals.Home != nil && f.Goals.Away != nil {
		score = models.Score{Home: *f.Goals.Home, Away: *f.Goals.Away}
	}

	isHome := f.Teams.Home.ID == teamID
	opponent := f.Teams.Home.Name
	if isHome {
		opponent = f.Teams.Away.Name
	}

	result := models.ResultDraw
	if *fulltime.Home != *fulltime.Away {
		result = models.SideResult(isHome, score.Home, score.Away)
	}

	return models.GameRecord{
		Date:     date,
		Opponent: opponent,
		Result:   result,
		Score:    score,
	}, true, nil
}

// ToGameRecords maps fixtures, dropping unfinished ones.
func ToGameRecords(fixtures []dto.Fixture, teamID int64) ([]models.GameRecord, int, error) {
	records := make([]models.GameRecord, 0, len(fixtures))
	skipped := 0
	for _, f := range fixtures {
		r, finished, err := ToGameRecord(f, teamID)
		if err != nil {
			return nil, 0, err
		}
		if !finished {
			skipped++
			continue
		}
		records = append(records, r)
	}
	return records, skipped, nil
}

func parseFixtureDate(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05-0700",
		"2006-01-02",
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported fixture date: %q", value)
}
