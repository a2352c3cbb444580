package service

import (
	"context"
	"errors"

	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/repository"
	"gorm.io/gorm"
)

type UpdateSettingsInput struct {
	LogoURL         string
	HeroTitle       string
	HeroDescription string
	CTATitle        string
	CTADescription  string
}

type SettingsService interface {
	// EnsureDefaults runs once at process start so reads never create.
	EnsureDefaults(ctx context.Context) error
	Get(ctx context.Context) (*model.SiteSettings, error)
	// Update is restricted to admins. The logo string is opaque to the
	// server; admin clients send a data URI capped at 2MB.
	Update(ctx context.Context, callerAuth0ID string, in UpdateSettingsInput) (*model.SiteSettings, error)
}

type settingsService struct {
	settings repository.SettingsRepository
	users    repository.UserRepository
}

func NewSettingsService(settings repository.SettingsRepository, users repository.UserRepository) SettingsService {
	return &settingsService{settings: settings, users: users}
}

func (s *settingsService) EnsureDefaults(ctx context.Context) error {
	_, err := s.settings.EnsureDefaults(ctx)
	return err
}

func (s *settingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.settings.EnsureDefaults(ctx)
		}
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, callerAuth0ID string, in UpdateSettingsInput) (*model.SiteSettings, error) {
	if callerAuth0ID == "" {
		return nil, ErrUnauthenticated
	}
	caller, err := s.users.FindByAuth0ID(ctx, callerAuth0ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if !caller.IsAdmin {
		return nil, ErrForbidden
	}

	updated := &model.SiteSettings{
		ID:              model.SiteSettingsID,
		LogoURL:         in.LogoURL,
		HeroTitle:       in.HeroTitle,
		HeroDescription: in.HeroDescription,
		CTATitle:        in.CTATitle,
		CTADescription:  in.CTADescription,
	}
	if err := s.settings.Upsert(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
