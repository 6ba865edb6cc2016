package apifootball

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	afclient "github.com/ozzus/bet-tracker/internal/infrastructures/apifootball/http/client"
	"go.uber.org/zap"
)

const headToHeadPayload = `{
	"errors": [],
	"response": [
		{"fixture": {"id": 1, "date": "2025-04-26T19:00:00+00:00"}, "teams": {"home": {"id": 529, "name": "Barcelona"}, "away": {"id": 541, "name": "Real Madrid"}}, "goals": {"home": 3, "away": 2}, "score": {"fulltime": {"home": 3, "away": 2}}},
		{"fixture": {"id": 2, "date": "2024-10-26T19:00:00+00:00"}, "teams": {"home": {"id": 541, "name": "Real Madrid"}, "away": {"id": 529, "name": "Barcelona"}}, "goals": {"home": 0, "away": 0}, "score": {"fulltime": {"home": 0, "away": 0}}},
		{"fixture": {"id": 3, "date": "2026-10-26T19:00:00+00:00"}, "teams": {"home": {"id": 541, "name": "Real Madrid"}, "away": {"id": 529, "name": "Barcelona"}}, "goals": {"home": null, "away": null}, "score": {"fulltime": {"home": null, "away": null}}}
	]
}`

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewSource(zap.NewNop(), afclient.NewClient(srv.URL, "soccer-key", srv.Client()))
}

func TestSource_FetchHeadToHead_MapsFromFirstTeam(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("h2h"); got != "541-529" {
			t.Fatalf("unexpected h2h parameter %s", got)
		}
		_, _ = w.Write([]byte(headToHeadPayload))
	})

	records, err := source.FetchHeadToHead(context.Background(), 541, 529, 140, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 finished fixtures, got %d", len(records))
	}
	if records[0].Result != models.ResultLoss || records[1].Result != models.ResultDraw {
		t.Fatalf("unexpected results: %s, %s", records[0].Result, records[1].Result)
	}
	if records[0].Opponent != "Barcelona" || records[0].Score.String() != "3-2" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestSource_FetchRecords_Non200(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`upstream down`))
	})

	records, err := source.FetchRecords(context.Background(), 541, 140, 5)
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records, got %v", records)
	}
}

func TestSource_FetchRecords_MalformedJSON(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response": [`))
	})

	_, err := source.FetchRecords(context.Background(), 541, 140, 5)
	if !errors.Is(err, derr.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}
