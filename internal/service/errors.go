package service

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrForbidden         = errors.New("admin access required")
	ErrListingNotActive  = errors.New("Listing is no longer active")
	ErrListingNotAuction = errors.New("This listing does not accept bids")
)

// ValidationError marks a request rejected before any write happened.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// BidTooLowError reports a rejected bid together with the floor it had to
// exceed. The message embeds the floor so the caller can surface it as-is.
type BidTooLowError struct {
	Floor float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("Bid must be higher than $%s", formatAmount(e.Floor))
}

// formatAmount renders 500 as "500" and 500.5 as "500.5".
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
