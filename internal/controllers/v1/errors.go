package v1

import (
	"errors"
	"net/http"

	"github.com/ltabis/thunes/internal/models"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errAnchorParameter = errors.New("the anchor query parameter must be a RFC 3339 date-time")
)
