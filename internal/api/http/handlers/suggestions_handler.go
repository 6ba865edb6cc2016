package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"go.uber.org/zap"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

type SuggestionHistory interface {
	RecentSuggestions(ctx context.Context, limit int) ([]models.SuggestionRecord, error)
}

type SuggestionsHandler struct {
	log     *zap.Logger
	history SuggestionHistory
	timeout time.Duration
}

type recentSuggestionsResponse struct {
	Items []models.SuggestionRecord `json:"items"`
}

func NewSuggestionsHandler(log *zap.Logger, history SuggestionHistory, timeout time.Duration) *SuggestionsHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SuggestionsHandler{log: log, history: history, timeout: timeout}
}

func (h *SuggestionsHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit, present, limitErr := parsePositiveIntQuery(r, "limit")
	if limitErr != "" {
		writeError(w, http.StatusBadRequest, limitErr)
		return
	}
	if !present {
		limit = defaultRecentLimit
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, err := h.history.RecentSuggestions(ctx, clampLimit(limit, maxRecentLimit))
	if err != nil {
		if errors.Is(err, derr.ErrHistoryDisabled) {
			writeError(w, http.StatusNotFound, "suggestion history is disabled")
			return
		}
		h.log.Error("load recent suggestions failed", zap.Error(err), zap.Int("limit", limit))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []models.SuggestionRecord{}
	}

	writeJSON(w, http.StatusOK, recentSuggestionsResponse{Items: items})
}
