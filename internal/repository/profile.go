package repository

import (
	"context"
	"strings"

	"digital-cards/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*model.Profile, error)
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepoImpl{
		db: db,
	}
}

// FindByUserID looks up a published card. Identifiers are stored uppercase,
// so the lookup is case-insensitive for visitors.
func (r *profileRepoImpl) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.ToUpper(userID)).
		First(&profile).Error

	if err != nil {
		return nil, err
	}

	return &profile, nil
}
