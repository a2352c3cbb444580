package handler

import (
	"errors"
	"net/http"

	"github.com/treemarket/treemarket-backend/internal/service"
)

// ErrorResponse is the error body for every route: a single human-readable
// message. Internal failures never leak detail beyond the generic message.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// statusForError maps service errors to HTTP status codes. Invalid listing
// state (inactive or fixed-price) maps to 400 like the other rejected
// requests.
func statusForError(err error) int {
	var (
		validationErr *service.ValidationError
		bidTooLowErr  *service.BidTooLowError
	)
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrListingNotActive),
		errors.Is(err, service.ErrListingNotAuction),
		errors.As(err, &validationErr),
		errors.As(err, &bidTooLowErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
