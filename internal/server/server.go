package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/treemarket/treemarket-backend/internal/config"
	"github.com/treemarket/treemarket-backend/internal/handler"
	"github.com/treemarket/treemarket-backend/internal/repository"
	"github.com/treemarket/treemarket-backend/internal/service"
	"github.com/treemarket/treemarket-backend/internal/species"
	"github.com/treemarket/treemarket-backend/internal/storage"
	"gorm.io/gorm"
)

type Server struct {
	e           *echo.Echo
	SettingsSvc service.SettingsService
}

func New(db *gorm.DB, cfg *config.Config, uploader storage.Uploader) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	listingRepo := repository.NewListingRepository(db)
	bidRepo := repository.NewBidRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	userSvc := service.NewUserService(userRepo)
	listingSvc := service.NewListingService(listingRepo, bidRepo, userRepo)
	bidSvc := service.NewBidService(listingRepo, bidRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, userRepo)

	speciesClient := species.NewClient(cfg.SpeciesSearchBase, cfg.SpeciesBIEBase, cfg.SpeciesImagesBase)

	listingHandler := handler.NewListingHandler(listingSvc, userSvc)
	bidHandler := handler.NewBidHandler(bidSvc, userSvc)
	userHandler := handler.NewUserHandler(userSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	uploadHandler := handler.NewUploadHandler(uploader)
	speciesHandler := handler.NewSpeciesHandler(speciesClient)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.GET("/listings", listingHandler.List)
	api.GET("/listings/:id", listingHandler.Get)
	api.POST("/listings", listingHandler.Create)
	api.POST("/bids", bidHandler.Create)
	api.GET("/user/me", userHandler.Me)
	api.GET("/admin/settings", settingsHandler.Get)
	api.PUT("/admin/settings", settingsHandler.Update)
	api.POST("/upload", uploadHandler.Upload)
	api.GET("/species/search", speciesHandler.Search)
	api.GET("/species/:guid", speciesHandler.Get)

	// Locally stored uploads are served straight from disk.
	if local, ok := uploader.(*storage.LocalUploader); ok {
		e.Static("/uploads/listings", local.Dir())
	}

	return &Server{e: e, SettingsSvc: settingsSvc}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
