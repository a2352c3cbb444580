package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/service"
)

type SettingsHandler struct {
	settings service.SettingsService
}

func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type SettingsResponse struct {
	LogoURL         string `json:"logoUrl,omitempty"`
	HeroTitle       string `json:"heroTitle"`
	HeroDescription string `json:"heroDescription"`
	CTATitle        string `json:"ctaTitle"`
	CTADescription  string `json:"ctaDescription"`
	UpdatedAt       string `json:"updatedAt"`
}

type UpdateSettingsRequest struct {
	Auth0ID         string `json:"auth0Id"`
	LogoURL         string `json:"logoUrl"`
	HeroTitle       string `json:"heroTitle"`
	HeroDescription string `json:"heroDescription"`
	CTATitle        string `json:"ctaTitle"`
	CTADescription  string `json:"ctaDescription"`
}

func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to fetch settings"))
	}
	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	if req.Auth0ID == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("Authentication required"))
	}

	settings, err := h.settings.Update(c.Request().Context(), req.Auth0ID, service.UpdateSettingsInput{
		LogoURL:         req.LogoURL,
		HeroTitle:       req.HeroTitle,
		HeroDescription: req.HeroDescription,
		CTATitle:        req.CTATitle,
		CTADescription:  req.CTADescription,
	})
	if err != nil {
		if err == service.ErrForbidden {
			return c.JSON(http.StatusForbidden, NewErrorResponse("Admin access required"))
		}
		return c.JSON(statusForError(err), NewErrorResponse(messageForStatus(err, "Failed to update settings")))
	}
	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}

func toSettingsResponse(s *model.SiteSettings) SettingsResponse {
	return SettingsResponse{
		LogoURL:         s.LogoURL,
		HeroTitle:       s.HeroTitle,
		HeroDescription: s.HeroDescription,
		CTATitle:        s.CTATitle,
		CTADescription:  s.CTADescription,
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}
