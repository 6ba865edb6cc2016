package mappers

import (
	"fmt"
	"time"

	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/dto"
)

// ToGameRecord maps a game from the perspective of teamID. Basketball has no
// draws: a level score is reported as a Loss.
func ToGameRecord(g dto.Game, teamID int64) (models.GameRecord, error) {
	date, err := parseGameDate(g)
	if err != nil {
		return models.GameRecord{}, fmt.Errorf("game %d: %w", g.ID, err)
	}

	isHome := g.HomeTeam.ID == teamID
	opponent := g.HomeTeam.FullName
	if isHome {
		opponent = g.VisitorTeam.FullName
	}

	return models.GameRecord{
		Date:     date,
		Opponent: opponent,
		Result:   models.SideResult(isHome, g.HomeTeamScore, g.VisitorTeamScore),
		Score: models.Score{
			Home: g.HomeTeamScore,
			Away: g.VisitorTeamScore,
		},
	}, nil
}

func ToGameRecords(games []dto.Game, teamID int64) ([]models.GameRecord, error) {
	records := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		r, err := ToGameRecord(g, teamID)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// IsBetween reports whether the game was played between exactly teams a and b.
func IsBetween(g dto.Game, a, b int64) bool {
	home, away := g.HomeTeam.ID, g.VisitorTeam.ID
	return (home == a && away == b) || (home == b && away == a)
}

func parseGameDate(g dto.Game) (time.Time, error) {
	for _, value := range []string{g.DateTime, g.Date} {
		if value == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
			if t, err := time.Parse(layout, value); err == nil {
				return t.UTC(), nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("unsupported game date: %q", g.Date)
}
