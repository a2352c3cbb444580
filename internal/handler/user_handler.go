package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type MeResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// Me resolves (and on first sight creates) the user for an external subject
// id. Missing auth0Id is a 400 on this route, matching the original contract.
func (h *UserHandler) Me(c echo.Context) error {
	auth0ID := c.QueryParam("auth0Id")
	if auth0ID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("auth0Id required"))
	}

	user, err := h.users.Ensure(c.Request().Context(), auth0ID, c.QueryParam("email"), c.QueryParam("name"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to fetch user"))
	}
	return c.JSON(http.StatusOK, MeResponse{
		IsAdmin: user.IsAdmin,
		Name:    user.Name,
		Email:   user.Email,
	})
}
