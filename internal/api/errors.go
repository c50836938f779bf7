package api

import (
	"errors"
	"net/http"

	"quest_admin/internal/service"
)

// reviewErrorStatus maps review workflow errors to HTTP status codes.
// storeUnavailable is the code the calling route reports for a missing store.
func reviewErrorStatus(err error, storeUnavailable int) int {
	switch {
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrQuestMismatch),
		errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, service.ErrProofURLRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrReviewerRequired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrProofNotFound),
		errors.Is(err, service.ErrQuestNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrStoreUnavailable):
		return storeUnavailable
	default:
		return http.StatusInternalServerError
	}
}
