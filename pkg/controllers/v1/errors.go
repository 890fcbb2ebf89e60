package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/pocketbook/backend/pkg/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no contact matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrSimulatedFailure) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid = errors.New("the month query parameter must be formatted as YYYY-MM")
	errGroupInvalid = errors.New("the group query parameter only supports 'initial'")
)
