package service

import (
	"context"
	"errors"
	"strings"

	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	// Ensure resolves the user for an external subject id, creating the row
	// on first sight with the supplied profile hints. Calling it twice with
	// the same id always yields the same internal identity.
	Ensure(ctx context.Context, auth0ID, email, name string) (*model.User, error)
	FindByAuth0ID(ctx context.Context, auth0ID string) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Ensure(ctx context.Context, auth0ID, email, name string) (*model.User, error) {
	auth0ID = strings.TrimSpace(auth0ID)
	if auth0ID == "" {
		return nil, ErrUnauthenticated
	}
	return s.users.Ensure(ctx, &model.User{
		ID:      model.NewID(),
		Auth0ID: auth0ID,
		Email:   strings.TrimSpace(email),
		Name:    strings.TrimSpace(name),
	})
}

func (s *userService) FindByAuth0ID(ctx context.Context, auth0ID string) (*model.User, error) {
	user, err := s.users.FindByAuth0ID(ctx, auth0ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
