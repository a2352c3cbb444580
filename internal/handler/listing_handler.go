package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/repository"
	"github.com/treemarket/treemarket-backend/internal/service"
)

type ListingHandler struct {
	listings service.ListingService
	users    service.UserService
}

func NewListingHandler(listings service.ListingService, users service.UserService) *ListingHandler {
	return &ListingHandler{listings: listings, users: users}
}

type SellerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	Email        string `json:"email,omitempty"`
}

type ListingResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description,omitempty"`
	Species       string               `json:"species"`
	Height        *float64             `json:"height,omitempty"`
	TrunkDiameter *float64             `json:"trunkDiameter,omitempty"`
	CanopyWidth   *float64             `json:"canopyWidth,omitempty"`
	HealthStatus  *model.HealthStatus  `json:"healthStatus,omitempty"`
	Age           *float64             `json:"age,omitempty"`
	Address       string               `json:"address"`
	Suburb        string               `json:"suburb"`
	State         string               `json:"state"`
	Postcode      string               `json:"postcode"`
	Latitude      *float64             `json:"latitude,omitempty"`
	Longitude     *float64             `json:"longitude,omitempty"`
	PricingType   model.PricingType    `json:"pricingType"`
	Price         *float64             `json:"price,omitempty"`
	Status        model.ListingStatus  `json:"status"`
	Images        []string             `json:"images"`
	PickupWindows []model.PickupWindow `json:"pickupWindows"`
	Seller        *SellerResponse      `json:"seller,omitempty"`
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
	ExpiresAt     *string              `json:"expiresAt,omitempty"`
}

type ListingDetailResponse struct {
	ListingResponse
	Bids         []BidResponse `json:"bids"`
	CurrentPrice string        `json:"currentPrice"`
}

type CreateListingRequest struct {
	Auth0ID   string `json:"auth0Id"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`

	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Species       string               `json:"species"`
	Height        *float64             `json:"height"`
	TrunkDiameter *float64             `json:"trunkDiameter"`
	CanopyWidth   *float64             `json:"canopyWidth"`
	HealthStatus  *model.HealthStatus  `json:"healthStatus"`
	Age           *float64             `json:"age"`
	Address       string               `json:"address"`
	Suburb        string               `json:"suburb"`
	State         string               `json:"state"`
	Postcode      string               `json:"postcode"`
	Latitude      *float64             `json:"latitude"`
	Longitude     *float64             `json:"longitude"`
	PricingType   model.PricingType    `json:"pricingType"`
	Price         *float64             `json:"price"`
	Images        []string             `json:"images"`
	PickupWindows []model.PickupWindow `json:"pickupWindows"`
	ExpiresAt     *time.Time           `json:"expiresAt"`
}

func (h *ListingHandler) List(c echo.Context) error {
	filter := repository.ListingFilter{
		Species:     c.QueryParam("species"),
		Suburb:      c.QueryParam("suburb"),
		State:       c.QueryParam("state"),
		PricingType: c.QueryParam("pricingType"),
	}
	summaries, err := h.listings.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to fetch listings"))
	}
	resp := make([]ListingResponse, 0, len(summaries))
	for i := range summaries {
		resp = append(resp, toListingResponse(&summaries[i].Listing, summaries[i].Seller))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) Get(c echo.Context) error {
	bidLimit, _ := strconv.Atoi(c.QueryParam("bidLimit"))
	detail, err := h.listings.Get(c.Request().Context(), c.Param("id"), bidLimit)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("Listing not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to fetch listing"))
	}

	resp := ListingDetailResponse{
		ListingResponse: toListingResponse(&detail.Listing, detail.Seller),
		Bids:            make([]BidResponse, 0, len(detail.Bids)),
		CurrentPrice:    detail.CurrentPrice,
	}
	for _, b := range detail.Bids {
		br := toBidResponse(&b.Bid)
		br.BidderName = b.BidderName
		resp.Bids = append(resp.Bids, br)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	if req.Auth0ID == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("Authentication required"))
	}

	seller, err := h.users.Ensure(c.Request().Context(), req.Auth0ID, req.UserEmail, req.UserName)
	if err != nil {
		return c.JSON(statusForError(err), NewErrorResponse(messageForStatus(err, "Failed to create listing")))
	}

	listing, err := h.listings.Create(c.Request().Context(), seller.ID, service.CreateListingInput{
		Title:         req.Title,
		Description:   req.Description,
		Species:       req.Species,
		Height:        req.Height,
		TrunkDiameter: req.TrunkDiameter,
		CanopyWidth:   req.CanopyWidth,
		HealthStatus:  req.HealthStatus,
		Age:           req.Age,
		Address:       req.Address,
		Suburb:        req.Suburb,
		State:         req.State,
		Postcode:      req.Postcode,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		PricingType:   req.PricingType,
		Price:         req.Price,
		Images:        req.Images,
		PickupWindows: req.PickupWindows,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		return c.JSON(statusForError(err), NewErrorResponse(messageForStatus(err, "Failed to create listing")))
	}

	resp := toListingResponse(listing, &service.SellerSummary{
		ID:           seller.ID,
		Name:         seller.Name,
		BusinessName: seller.BusinessName,
	})
	return c.JSON(http.StatusCreated, resp)
}

func toListingResponse(l *model.Listing, seller *service.SellerSummary) ListingResponse {
	resp := ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Species:       l.Species,
		Height:        l.Height,
		TrunkDiameter: l.TrunkDiameter,
		CanopyWidth:   l.CanopyWidth,
		HealthStatus:  l.HealthStatus,
		Age:           l.Age,
		Address:       l.Address,
		Suburb:        l.Suburb,
		State:         l.State,
		Postcode:      l.Postcode,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		PricingType:   l.PricingType,
		Price:         l.Price,
		Status:        l.Status,
		Images:        l.Images,
		PickupWindows: l.PickupWindows,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     l.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if resp.PickupWindows == nil {
		resp.PickupWindows = []model.PickupWindow{}
	}
	if l.ExpiresAt != nil {
		s := l.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &s
	}
	if seller != nil {
		resp.Seller = &SellerResponse{
			ID:           seller.ID,
			Name:         seller.Name,
			BusinessName: seller.BusinessName,
			Email:        seller.Email,
		}
	}
	return resp
}

// messageForStatus keeps 5xx messages generic while passing through the
// service's own wording for client errors.
func messageForStatus(err error, generic string) string {
	if statusForError(err) == http.StatusInternalServerError {
		return generic
	}
	return err.Error()
}
