package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxLastN           = 50
	defaultDashboardTO = 30 * time.Second
)

type DashboardBuilder interface {
	Build(ctx context.Context, sel models.Selection) (models.Dashboard, error)
}

type DashboardHandler struct {
	log     *zap.Logger
	builder DashboardBuilder
	timeout time.Duration
}

func NewDashboardHandler(log *zap.Logger, builder DashboardBuilder, timeout time.Duration) *DashboardHandler {
	if timeout <= 0 {
		timeout = defaultDashboardTO
	}
	return &DashboardHandler{log: log, builder: builder, timeout: timeout}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()
	sport, ok := models.ParseSport(query.Get("sport"))
	if !ok {
		writeError(w, http.StatusBadRequest, "sport must be nba or soccer")
		return
	}

	team := strings.TrimSpace(query.Get("team"))
	if team == "" {
		writeError(w, http.StatusBadRequest, "team is required")
		return
	}

	lastN, _, lastErr := parsePositiveIntQuery(r, "last")
	if lastErr != "" {
		writeError(w, http.StatusBadRequest, lastErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	dash, err := h.builder.Build(ctx, models.Selection{
		Sport:    sport,
		Team:     team,
		Opponent: strings.TrimSpace(query.Get("opponent")),
		League:   strings.TrimSpace(query.Get("league")),
		LastN:    clampLimit(lastN, maxLastN),
	})
	if err != nil {
		if isSelectionError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("build dashboard failed", zap.Error(err), zap.String("sport", string(sport)), zap.String("team", team))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, dash)
}

func isSelectionError(err error) bool {
	return errors.Is(err, derr.ErrUnknownSport) ||
		errors.Is(err, derr.ErrUnknownTeam) ||
		errors.Is(err, derr.ErrUnknownLeague)
}
