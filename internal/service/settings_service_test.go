package service

import (
	"context"
	"testing"

	"github.com/treemarket/treemarket-backend/internal/model"
)

func newSettingsFixture() (SettingsService, *fakeSettingsRepo, *fakeUserRepo) {
	settings := &fakeSettingsRepo{}
	users := newFakeUserRepo()
	return NewSettingsService(settings, users), settings, users
}

func TestEnsureDefaultsThenGet(t *testing.T) {
	svc, repo, _ := newSettingsFixture()
	ctx := context.Background()

	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}
	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HeroTitle != model.DefaultHeroTitle {
		t.Fatalf("heroTitle=%q", got.HeroTitle)
	}
	if repo.row == nil {
		t.Fatal("defaults were not persisted")
	}

	// Running it again must not clobber existing content.
	repo.row.HeroTitle = "Edited"
	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if repo.row.HeroTitle != "Edited" {
		t.Fatalf("heroTitle=%q, want Edited", repo.row.HeroTitle)
	}
}

func TestUpdateSettingsRequiresAdmin(t *testing.T) {
	svc, repo, users := newSettingsFixture()
	ctx := context.Background()
	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}
	before := *repo.row

	users.byAuth0["auth0|plain"] = model.User{ID: "u1", Auth0ID: "auth0|plain"}

	tests := []struct {
		name    string
		caller  string
		wantErr error
	}{
		{"missing caller", "", ErrUnauthenticated},
		{"unknown caller", "auth0|ghost", ErrForbidden},
		{"non-admin caller", "auth0|plain", ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, tt.caller, UpdateSettingsInput{HeroTitle: "Hacked"})
			if err != tt.wantErr {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
			if *repo.row != before {
				t.Fatalf("settings changed by rejected update: %+v", repo.row)
			}
		})
	}
}

func TestUpdateSettingsAsAdmin(t *testing.T) {
	svc, repo, users := newSettingsFixture()
	ctx := context.Background()
	if err := svc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}
	users.byAuth0["auth0|admin"] = model.User{ID: "u2", Auth0ID: "auth0|admin", IsAdmin: true}

	got, err := svc.Update(ctx, "auth0|admin", UpdateSettingsInput{
		LogoURL:         "data:image/png;base64,aGVsbG8=",
		HeroTitle:       "New Hero",
		HeroDescription: "New hero copy",
		CTATitle:        "New CTA",
		CTADescription:  "New CTA copy",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.HeroTitle != "New Hero" || got.LogoURL == "" {
		t.Fatalf("got=%+v", got)
	}
	if repo.row.HeroTitle != "New Hero" {
		t.Fatalf("persisted=%+v", repo.row)
	}
}
