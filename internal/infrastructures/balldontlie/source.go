package balldontlie

import (
	"context"
	"fmt"
	"sort"
	"time"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/dto"
	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/http/client"
	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/mappers"
)

// headToHeadPageSize is the largest page the games endpoint serves. Mutual
// games are a small share of either team's schedule, so a page of lastN
// usually holds none of them.
const headToHeadPageSize = 100

type Source struct {
	client *client.Client
	now    func() time.Time
}

func NewSource(client *client.Client) *Source {
	return &Source{
		client: client,
		now:    time.Now,
	}
}

// FetchRecords returns the team's last games of the previous season.
// leagueID is ignored.
func (s *Source) FetchRecords(ctx context.Context, teamID, _ int64, lastN int) ([]models.GameRecord, error) {
	resp, err := s.client.GetGames(ctx, dto.GamesQuery{
		TeamIDs: []int64{teamID},
		Seasons: []int{s.now().Year() - 1},
		PerPage: lastN,
	})
	if err != nil {
		return nil, fmt.Errorf("get games: %w", err)
	}

	records, err := mappers.ToGameRecords(resp.Data, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: map games: %v", derr.ErrDecode, err)
	}

	return records, nil
}

// FetchHeadToHead returns the latest lastN games between the two teams from
// teamID's perspective, oldest first. The games endpoint filters by "either
// team", so games against third teams are dropped after fetching a full page.
func (s *Source) FetchHeadToHead(ctx context.Context, teamID, opponentID, _ int64, lastN int) ([]models.GameRecord, error) {
	resp, err := s.client.GetGames(ctx, dto.GamesQuery{
		TeamIDs: []int64{teamID, opponentID},
		PerPage: headToHeadPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("get head-to-head games: %w", err)
	}

	games := make([]dto.Game, 0, len(resp.Data))
	for _, g := range resp.Data {
		if mappers.IsBetween(g, teamID, opponentID) {
			games = append(games, g)
		}
	}

	records, err := mappers.ToGameRecords(games, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: map head-to-head games: %v", derr.ErrDecode, err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	if lastN > 0 && len(records) > lastN {
		records = records[len(records)-lastN:]
	}

	return records, nil
}
