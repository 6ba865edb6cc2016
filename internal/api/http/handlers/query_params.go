package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

func parsePositiveIntQuery(r *http.Request, key string) (value int, present bool, errMsg string) {
	values, ok := r.URL.Query()[key]
	if !ok {
		return 0, false, ""
	}

	raw := ""
	if len(values) > 0 {
		raw = strings.TrimSpace(values[0])
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, true, key + " must be a positive integer"
	}

	return parsed, true, ""
}

func clampLimit(value, max int) int {
	if value > max {
		return max
	}
	return value
}
