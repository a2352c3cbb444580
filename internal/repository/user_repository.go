package repository

import (
	"context"

	"github.com/treemarket/treemarket-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	// Ensure creates the user if no row exists for its Auth0ID and returns
	// the canonical row either way. The insert uses the store's native
	// conflict handling, so concurrent calls for the same subject id
	// converge on one row.
	Ensure(ctx context.Context, user *model.User) (*model.User, error)
	FindByAuth0ID(ctx context.Context, auth0ID string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Ensure(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "auth0_id"}},
			DoNothing: true,
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}
	return r.FindByAuth0ID(ctx, user.Auth0ID)
}

func (r *userRepository) FindByAuth0ID(ctx context.Context, auth0ID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "auth0_id = ?", auth0ID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.User, error) {
	out := make(map[string]model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}
