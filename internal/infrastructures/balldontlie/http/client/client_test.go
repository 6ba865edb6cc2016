package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/dto"
)

func TestGetGames_SendsAuthAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/games" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "nba-key" {
			t.Fatalf("expected raw api key in Authorization, got %q", got)
		}

		q := r.URL.Query()
		if got := q["team_ids[]"]; len(got) != 2 || got[0] != "14" || got[1] != "2" {
			t.Fatalf("unexpected team ids: %v", got)
		}
		if got := q.Get("seasons[]"); got != "2025" {
			t.Fatalf("unexpected season: %s", got)
		}
		if got := q.Get("per_page"); got != "5" {
			t.Fatalf("unexpected per_page: %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":10,"date":"2025-01-02","status":"Final","home_team":{"id":14,"full_name":"Los Angeles Lakers"},"visitor_team":{"id":2,"full_name":"Boston Celtics"},"home_team_score":110,"visitor_team_score":102,"season":2025}],"meta":{"per_page":5}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "nba-key", srv.Client())
	resp, err := c.GetGames(context.Background(), dto.GamesQuery{
		TeamIDs: []int64{14, 2},
		Seasons: []int{2025},
		PerPage: 5,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected one game, got %d", len(resp.Data))
	}
	if resp.Data[0].HomeTeam.FullName != "Los Angeles Lakers" || resp.Data[0].VisitorTeamScore != 102 {
		t.Fatalf("unexpected game payload: %+v", resp.Data[0])
	}
}

func TestGetGames_OmitsEmptyFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if _, ok := q["seasons[]"]; ok {
			t.Fatalf("seasons must be omitted, got %v", q["seasons[]"])
		}
		if _, ok := q["per_page"]; ok {
			t.Fatalf("per_page must be omitted, got %v", q["per_page"])
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "nba-key", srv.Client())
	if _, err := c.GetGames(context.Background(), dto.GamesQuery{TeamIDs: []int64{14}}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestGetGames_UnauthorizedMapsToStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`Unauthorized`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", srv.Client())
	_, err := c.GetGames(context.Background(), dto.GamesQuery{TeamIDs: []int64{14}})

	var statusErr *derr.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized || statusErr.Body != "Unauthorized" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
	if !errors.Is(err, derr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetGames_ServerErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "nba-key", &http.Client{Timeout: time.Second})
	_, err := c.GetGames(context.Background(), dto.GamesQuery{TeamIDs: []int64{14}})
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestNewClient_DefaultsBaseURL(t *testing.T) {
	c := NewClient("", "nba-key", nil)
	if c.baseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
	if c.httpClient == nil || c.httpClient.Timeout == 0 {
		t.Fatal("expected default http client with timeout")
	}
}
