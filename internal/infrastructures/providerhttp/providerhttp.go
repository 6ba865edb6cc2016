// Package providerhttp holds the request/response handling shared by the
// provider clients: status classification, bounded error bodies and JSON decoding.
package providerhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
)

const (
	DefaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 512
)

func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func NormalizeBaseURL(baseURL, fallback string) string {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = fallback
	}
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

// DoJSON executes req and decodes a 2xx JSON body into out.
func DoJSON(httpClient *http.Client, req *http.Request, provider string, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		// url.Error quotes the full request URL, query credentials included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%s: %w: do request %s: %w", provider, derr.ErrSourceUnavailable, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return derr.NewStatusError(provider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", provider, derr.ErrDecode, err)
	}

	return nil
}
