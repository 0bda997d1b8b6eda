package http

import (
	"net/http"
	"time"

	apperrors "pmshub/pkg/errors"
)

const HeaderUserID = "X-User-ID"

// ExtractUserID reads the calling user's id from the X-User-ID header.
// Every per-user resource (connections, synced records) is keyed by it.
func ExtractUserID(r *http.Request) (string, error) {
	userID := r.Header.Get(HeaderUserID)
	if userID == "" {
		return "", apperrors.Unauthorized("missing " + HeaderUserID + " header")
	}
	return userID, nil
}

// ExtractDateRange parses optional from/to query parameters (RFC3339).
// Zero times are returned for absent parameters.
func ExtractDateRange(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	var from, to time.Time
	if s := query.Get("from"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return from, to, apperrors.InvalidInput("invalid from parameter, must be RFC3339: " + s)
		}
		from = parsed
	}
	if s := query.Get("to"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return from, to, apperrors.InvalidInput("invalid to parameter, must be RFC3339: " + s)
		}
		to = parsed
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, apperrors.InvalidInput("to must not be before from")
	}

	return from, to, nil
}
