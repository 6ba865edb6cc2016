package apifootball

import (
	"context"
	"fmt"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/infrastructures/apifootball/dto"
	"github.com/ozzus/bet-tracker/internal/infrastructures/apifootball/http/client"
	"github.com/ozzus/bet-tracker/internal/infrastructures/apifootball/mappers"
	"go.uber.org/zap"
)

type Source struct {
	log    *zap.Logger
	client *client.Client
}

func NewSource(log *zap.Logger, client *client.Client) *Source {
	return &Source{
		log:    log,
		client: client,
	}
}

func (s *Source) FetchRecords(ctx context.Context, teamID, leagueID int64, lastN int) ([]models.GameRecord, error) {
	resp, err := s.client.GetFixtures(ctx, dto.FixturesQuery{
		TeamID:   teamID,
		LeagueID: leagueID,
		Last:     lastN,
	})
	if err != nil {
		return nil, fmt.Errorf("get fixtures: %w", err)
	}

	return s.toRecords(resp.Response, teamID)
}

// FetchHeadToHead ignores leagueID: head-to-head history spans competitions.
func (s *Source) FetchHeadToHead(ctx context.Context, teamID, opponentID, _ int64, lastN int) ([]models.GameRecord, error) {
	resp, err := s.client.GetHeadToHead(ctx, dto.HeadToHeadQuery{
		TeamID:     teamID,
		OpponentID: opponentID,
		Last:       lastN,
	})
	if err != nil {
		return nil, fmt.Errorf("get head-to-head fixtures: %w", err)
	}

	return s.toRecords(resp.Response, teamID)
}

func (s *Source) toRecords(fixtures []dto.Fixture, teamID int64) ([]models.GameRecord, error) {
	records, skipped, err := mappers.ToGameRecords(fixtures, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: map fixtures: %v", derr.ErrDecode, err)
	}
	if skipped > 0 {
		s.log.Debug("skipped unfinished fixtures", zap.Int64("team_id", teamID), zap.Int("skipped", skipped))
	}

	return records, nil
}
