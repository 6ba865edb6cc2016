package ports

import (
	"context"
	"time"

	"github.com/ozzus/bet-tracker/internal/domain/models"
)

// RecordSource fetches finished games for one sport. Sources that have no
// league dimension ignore leagueID.
type RecordSource interface {
	FetchRecords(ctx context.Context, teamID, leagueID int64, lastN int) ([]models.GameRecord, error)
	FetchHeadToHead(ctx context.Context, teamID, opponentID, leagueID int64, lastN int) ([]models.GameRecord, error)
}

type OddsSource interface {
	FetchOdds(ctx context.Context, sportKey string) (models.OddsPayload, error)
}

type RecordCache interface {
	GetRecords(ctx context.Context, key string) ([]models.GameRecord, error)
	SetRecords(ctx context.Context, key string, records []models.GameRecord, ttl time.Duration) error
	GetOdds(ctx context.Context, sportKey string) (models.OddsPayload, error)
	SetOdds(ctx context.Context, sportKey string, payload models.OddsPayload, ttl time.Duration) error
}

type SuggestionRepository interface {
	Save(ctx context.Context, record models.SuggestionRecord) error
	Recent(ctx context.Context, limit int) ([]models.SuggestionRecord, error)
}
