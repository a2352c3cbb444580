package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/service"
)

type BidHandler struct {
	bids  service.BidService
	users service.UserService
}

func NewBidHandler(bids service.BidService, users service.UserService) *BidHandler {
	return &BidHandler{bids: bids, users: users}
}

type PlaceBidRequest struct {
	ListingID string  `json:"listingId"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"`
	Auth0ID   string  `json:"auth0Id"`
	UserEmail string  `json:"userEmail"`
	UserName  string  `json:"userName"`
}

type BidResponse struct {
	ID         string          `json:"id"`
	ListingID  string          `json:"listingId"`
	BidderID   string          `json:"bidderId"`
	BidderName string          `json:"bidderName,omitempty"`
	Amount     float64         `json:"amount"`
	Message    string          `json:"message,omitempty"`
	Status     model.BidStatus `json:"status"`
	CreatedAt  string          `json:"createdAt"`
}

func (h *BidHandler) Create(c echo.Context) error {
	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	if req.Auth0ID == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("Authentication required"))
	}

	bidder, err := h.users.Ensure(c.Request().Context(), req.Auth0ID, req.UserEmail, req.UserName)
	if err != nil {
		return c.JSON(statusForError(err), NewErrorResponse(messageForStatus(err, "Failed to place bid")))
	}

	bid, err := h.bids.Place(c.Request().Context(), req.ListingID, bidder.ID, req.Amount, req.Message)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("Listing not found"))
		}
		return c.JSON(statusForError(err), NewErrorResponse(messageForStatus(err, "Failed to place bid")))
	}
	return c.JSON(http.StatusCreated, toBidResponse(bid))
}

func toBidResponse(b *model.Bid) BidResponse {
	return BidResponse{
		ID:        b.ID,
		ListingID: b.ListingID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		Message:   b.Message,
		Status:    b.Status,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
