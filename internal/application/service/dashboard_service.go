package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ozzus/bet-tracker/internal/domain/catalog"
	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultLastN = 5

	DefaultRecentLimit = 20
	MaxRecentLimit     = 100

	SourceRecords    = "records"
	SourceHeadToHead = "head_to_head"
	SourceOdds       = "odds"
)

type Sources struct {
	NBA    ports.RecordSource
	Soccer ports.RecordSource
	Odds   ports.OddsSource
}

type DashboardService struct {
	log       *zap.Logger
	catalog   catalog.Catalog
	sources   Sources
	cache     ports.RecordCache
	history   ports.SuggestionRepository
	cacheTTL  time.Duration
	bookmaker string
	lastN     int
	now       func() time.Time
}

// NewDashboardService wires the render pipeline. cache and history are
// optional and may be nil.
func NewDashboardService(
	log *zap.Logger,
	cat catalog.Catalog,
	sources Sources,
	cache ports.RecordCache,
	history ports.SuggestionRepository,
	cacheTTL time.Duration,
	bookmaker string,
	lastN int,
) *DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	if lastN <= 0 {
		lastN = DefaultLastN
	}

	return &DashboardService{
		log:       log,
		catalog:   cat,
		sources:   sources,
		cache:     cache,
		history:   history,
		cacheTTL:  cacheTTL,
		bookmaker: bookmaker,
		lastN:     lastN,
		now:       time.Now,
	}
}

func (s *DashboardService) HistoryEnabled() bool {
	return s.history != nil
}

// Build renders one dashboard. Only selection errors are returned; provider
// failures end up in Dashboard.Diagnostics.
func (s *DashboardService) Build(ctx context.Context, sel models.Selection) (models.Dashboard, error) {
	const op = "service.Build"
	tracer := otel.Tracer("bet-tracker/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()

	logger := s.log.With(
		zap.String("op", op),
		zap.String("sport", string(sel.Sport)),
		zap.String("team", sel.Team),
	)

	dash, source, err := s.resolve(sel)
	if err != nil {
		logger.Warn("invalid selection", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "invalid selection")
		return models.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	span.SetAttributes(
		attribute.String("dashboard.sport", string(dash.Sport)),
		attribute.Int64("dashboard.team_id", dash.Team.ID),
		attribute.Int("dashboard.last_n", dash.LastN),
	)
	logger = logger.With(zap.Int64("team_id", dash.Team.ID))

	var leagueID int64
	if dash.League != nil {
		leagueID = dash.League.ID
	}

	recordsKey := fmt.Sprintf("records:%s:%d:%d:%d", dash.Sport, dash.Team.ID, leagueID, dash.LastN)
	records, err := s.cachedRecords(ctx, logger, SourceRecords, recordsKey, func(ctx context.Context) ([]models.GameRecord, error) {
		return source.FetchRecords(ctx, dash.Team.ID, leagueID, dash.LastN)
	})
	if err != nil {
		dash.Diagnostics = append(dash.Diagnostics, s.diagnose(ctx, logger, SourceRecords, err))
	}
	dash.Records = nonNilRecords(records)

	if dash.Opponent.ID > 0 {
		h2hKey := fmt.Sprintf("h2h:%s:%d:%d:%d", dash.Sport, dash.Team.ID, dash.Opponent.ID, dash.LastN)
		h2h, err := s.cachedRecords(ctx, logger, SourceHeadToHead, h2hKey, func(ctx context.Context) ([]models.GameRecord, error) {
			return source.FetchHeadToHead(ctx, dash.Team.ID, dash.Opponent.ID, leagueID, dash.LastN)
		})
		if err != nil {
			dash.Diagnostics = append(dash.Diagnostics, s.diagnose(ctx, logger, SourceHeadToHead, err))
		}
		dash.HeadToHead = h2h
	}
	dash.HeadToHead = nonNilRecords(dash.HeadToHead)

	sportKey := catalog.NBAOddsSportKey
	if dash.League != nil {
		sportKey = dash.League.OddsSportKey
	}
	odds, err := s.cachedOdds(ctx, logger, sportKey)
	if err != nil {
		dash.Diagnostics = append(dash.Diagnostics, s.diagnose(ctx, logger, SourceOdds, err))
	}
	if odds == nil {
		odds = models.OddsPayload{}
	}
	dash.Odds = odds

	dash.Suggestion = Suggest(dash.Odds, dash.Records, dash.Team.Name, models.BookmakerTitle(dash.Bookmaker))
	s.saveSuggestion(ctx, logger, dash)

	span.SetAttributes(
		attribute.Int("dashboard.records", len(dash.Records)),
		attribute.Int("dashboard.head_to_head", len(dash.HeadToHead)),
		attribute.Int("dashboard.odds_events", len(dash.Odds)),
		attribute.Int("dashboard.diagnostics", len(dash.Diagnostics)),
	)
	if len(dash.Diagnostics) > 0 {
		span.SetStatus(otelcodes.Error, "partial dashboard")
	} else {
		span.SetStatus(otelcodes.Ok, "ok")
	}
	logger.Info("dashboard built",
		zap.Int("records", len(dash.Records)),
		zap.Int("head_to_head", len(dash.HeadToHead)),
		zap.Int("odds_events", len(dash.Odds)),
		zap.Int("diagnostics", len(dash.Diagnostics)),
	)

	return dash, nil
}

func (s *DashboardService) RecentSuggestions(ctx context.Context, limit int) ([]models.SuggestionRecord, error) {
	const op = "service.RecentSuggestions"

	if s.history == nil {
		return nil, derr.ErrHistoryDisabled
	}

	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}

	records, err := s.history.Recent(ctx, limit)
	if err != nil {
		s.log.Warn("failed to load suggestion history", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *DashboardService) resolve(sel models.Selection) (models.Dashboard, ports.RecordSource, error) {
	var source ports.RecordSource
	switch sel.Sport {
	case models.SportNBA:
		source = s.sources.NBA
	case models.SportSoccer:
		source = s.sources.Soccer
	default:
		return models.Dashboard{}, nil, fmt.Errorf("%w: %q", derr.ErrUnknownSport, sel.Sport)
	}
	if source == nil {
		return models.Dashboard{}, nil, fmt.Errorf("%w: %s source is not configured", derr.ErrUnknownSport, sel.Sport)
	}

	team, err := s.catalog.Team(sel.Sport, sel.Team)
	if err != nil {
		return models.Dashboard{}, nil, err
	}

	dash := models.Dashboard{
		Sport:     sel.Sport,
		Team:      team,
		LastN:     sel.LastN,
		Bookmaker: s.bookmaker,
	}
	if dash.LastN <= 0 {
		dash.LastN = s.lastN
	}

	if strings.TrimSpace(sel.Opponent) != "" {
		opponent, err := s.catalog.Team(sel.Sport, sel.Opponent)
		if err != nil {
			return models.Dashboard{}, nil, err
		}
		dash.Opponent = opponent
	}

	if sel.Sport == models.SportSoccer {
		league, err := s.resolveLeague(sel.League)
		if err != nil {
			return models.Dashboard{}, nil, err
		}
		dash.League = &league
	}

	return dash, source, nil
}

// resolveLeague falls back to the first catalog league when none is selected.
func (s *DashboardService) resolveLeague(query string) (models.League, error) {
	if strings.TrimSpace(query) != "" {
		return s.catalog.League(query)
	}
	if len(s.catalog.Leagues) == 0 {
		return models.League{}, fmt.Errorf("%w: no leagues configured", derr.ErrUnknownLeague)
	}
	return s.catalog.Leagues[0], nil
}

func (s *DashboardService) cachedRecords(
	ctx context.Context,
	logger *zap.Logger,
	source, key string,
	fetch func(ctx context.Context) ([]models.GameRecord, error),
) ([]models.GameRecord, error) {
	ctx, span := otel.Tracer("bet-tracker/service").Start(ctx, "service.fetch."+source)
	defer span.End()
	span.SetAttributes(attribute.String("cache.key", key))

	if s.cacheEnabled() {
		cached, err := s.cache.GetRecords(ctx, key)
		switch {
		case err == nil:
			logger.Debug("cache hit", zap.String("source", source), zap.String("key", key))
			span.AddEvent("cache.hit")
			return cached, nil
		case errors.Is(err, derr.ErrNotFound):
			span.AddEvent("cache.miss")
		default:
			logger.Warn("cache read failed", zap.String("source", source), zap.Error(err))
			span.RecordError(err)
		}
	}

	records, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "fetch failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("records.count", len(records)))

	if s.cacheEnabled() {
		if err := s.cache.SetRecords(ctx, key, records, s.cacheTTL); err != nil {
			logger.Warn("cache write failed", zap.String("source", source), zap.Error(err))
			span.RecordError(err)
		}
	}

	return records, nil
}

func (s *DashboardService) cachedOdds(ctx context.Context, logger *zap.Logger, sportKey string) (models.OddsPayload, error) {
	ctx, span := otel.Tracer("bet-tracker/service").Start(ctx, "service.fetch."+SourceOdds)
	defer span.End()
	span.SetAttributes(attribute.String("odds.sport_key", sportKey))

	if s.sources.Odds == nil {
		return nil, fmt.Errorf("%w: odds source is not configured", derr.ErrSourceUnavailable)
	}

	if s.cacheEnabled() {
		cached, err := s.cache.GetOdds(ctx, sportKey)
		switch {
		case err == nil:
			span.AddEvent("cache.hit")
			return cached, nil
		case errors.Is(err, derr.ErrNotFound):
			span.AddEvent("cache.miss")
		default:
			logger.Warn("cache read failed", zap.String("source", SourceOdds), zap.Error(err))
			span.RecordError(err)
		}
	}

	payload, err := s.sources.Odds.FetchOdds(ctx, sportKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "fetch failed")
		return nil, err
	}

	if s.cacheEnabled() {
		if err := s.cache.SetOdds(ctx, sportKey, payload, s.cacheTTL); err != nil {
			logger.Warn("cache write failed", zap.String("source", SourceOdds), zap.Error(err))
			span.RecordError(err)
		}
	}

	return payload, nil
}

func (s *DashboardService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

func (s *DashboardService) diagnose(ctx context.Context, logger *zap.Logger, source string, err error) models.Diagnostic {
	d := models.Diagnostic{
		Source:  source,
		Message: err.Error(),
	}

	var statusErr *derr.StatusError
	if errors.As(err, &statusErr) {
		d.StatusCode = statusErr.StatusCode
	}

	logger.Warn("source fetch failed",
		zap.String("source", source),
		zap.Int("status", d.StatusCode),
		zap.Error(err),
	)
	trace.SpanFromContext(ctx).AddEvent(
		"source.error",
		trace.WithAttributes(
			attribute.String("source", source),
			attribute.Int("status", d.StatusCode),
		),
	)

	return d
}

func (s *DashboardService) saveSuggestion(ctx context.Context, logger *zap.Logger, dash models.Dashboard) {
	if s.history == nil || dash.Suggestion.Games == 0 {
		return
	}

	record := models.SuggestionRecord{
		Sport:      dash.Sport,
		TeamID:     dash.Team.ID,
		TeamName:   dash.Team.Name,
		Suggestion: dash.Suggestion,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.history.Save(ctx, record); err != nil {
		logger.Warn("failed to save suggestion", zap.Error(err))
	}
}

func nonNilRecords(records []models.GameRecord) []models.GameRecord {
	if records == nil {
		return []models.GameRecord{}
	}
	return records
}
