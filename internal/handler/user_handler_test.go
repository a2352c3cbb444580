package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/model"
)

func TestMeRequiresAuth0ID(t *testing.T) {
	e := echo.New()
	e.GET("/api/user/me", NewUserHandler(&fakeUserService{}).Me)

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "auth0Id required") {
		t.Fatalf("body=%s", rec.Body.String())
	}
}

func TestMeReturnsProfile(t *testing.T) {
	users := &fakeUserService{user: &model.User{
		ID: "u1", Auth0ID: "auth0|abc", Email: "a@example.com", Name: "Alex", IsAdmin: true,
	}}
	e := echo.New()
	e.GET("/api/user/me", NewUserHandler(users).Me)

	req := httptest.NewRequest(http.MethodGet, "/api/user/me?auth0Id=auth0%7Cabc&email=a%40example.com&name=Alex", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"isAdmin":true`) || !strings.Contains(body, `"email":"a@example.com"`) {
		t.Fatalf("body=%s", body)
	}
}
