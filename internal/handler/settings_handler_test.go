package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/service"
)

type fakeSettingsService struct {
	settings *model.SiteSettings
	err      error
}

func (f *fakeSettingsService) EnsureDefaults(context.Context) error {
	return f.err
}

func (f *fakeSettingsService) Get(context.Context) (*model.SiteSettings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsService) Update(_ context.Context, _ string, in service.UpdateSettingsInput) (*model.SiteSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.SiteSettings{
		ID:              model.SiteSettingsID,
		LogoURL:         in.LogoURL,
		HeroTitle:       in.HeroTitle,
		HeroDescription: in.HeroDescription,
		CTATitle:        in.CTATitle,
		CTADescription:  in.CTADescription,
	}, nil
}

func putJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetSettings(t *testing.T) {
	e := echo.New()
	e.GET("/api/admin/settings", NewSettingsHandler(&fakeSettingsService{
		settings: model.DefaultSiteSettings(),
	}).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), model.DefaultHeroTitle) {
		t.Fatalf("body=%s", rec.Body.String())
	}
}

func TestUpdateSettingsAuthAndAuthz(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeSettingsService
		body       string
		wantStatus int
	}{
		{"missing caller", &fakeSettingsService{}, `{"heroTitle":"x"}`, http.StatusUnauthorized},
		{"non-admin", &fakeSettingsService{err: service.ErrForbidden}, `{"auth0Id":"auth0|plain","heroTitle":"x"}`, http.StatusForbidden},
		{"admin", &fakeSettingsService{}, `{"auth0Id":"auth0|admin","heroTitle":"New Hero"}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.PUT("/api/admin/settings", NewSettingsHandler(tt.svc).Update)
			rec := putJSON(e, "/api/admin/settings", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d (body=%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
