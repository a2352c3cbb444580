package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/species"
)

type SpeciesHandler struct {
	client *species.Client
}

func NewSpeciesHandler(client *species.Client) *SpeciesHandler {
	return &SpeciesHandler{client: client}
}

func (h *SpeciesHandler) Search(c echo.Context) error {
	suggestions, err := h.client.Search(c.Request().Context(), c.QueryParam("q"), 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to search species"))
	}
	return c.JSON(http.StatusOK, suggestions)
}

func (h *SpeciesHandler) Get(c echo.Context) error {
	guid := c.Param("guid")
	if guid == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("GUID required"))
	}
	detail, err := h.client.Get(c.Request().Context(), guid)
	if err != nil {
		if errors.Is(err, species.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("Species not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to fetch species details"))
	}
	return c.JSON(http.StatusOK, detail)
}
