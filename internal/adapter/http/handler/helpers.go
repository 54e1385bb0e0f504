package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dtella/chartledger/internal/adapter/http/dto"
	"github.com/dtella/chartledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parsePeriod parses optional "from" and "to" date query parameters.
func parsePeriod(r *http.Request) (domain.Period, error) {
	var period domain.Period

	if val := r.URL.Query().Get("from"); val != "" {
		from, err := time.Parse(dto.DateFormat, val)
		if err != nil {
			return domain.Period{}, err
		}
		period.From = &from
	}

	if val := r.URL.Query().Get("to"); val != "" {
		to, err := time.Parse(dto.DateFormat, val)
		if err != nil {
			return domain.Period{}, err
		}
		period.To = &to
	}

	return period, nil
}

// periodBounds formats the period bounds for balance responses.
func periodBounds(period domain.Period) (from, to string) {
	if period.From != nil {
		from = period.From.Format(dto.DateFormat)
	}
	if period.To != nil {
		to = period.To.Format(dto.DateFormat)
	}
	return from, to
}
