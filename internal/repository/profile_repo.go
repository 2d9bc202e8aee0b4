package repository

import (
	"context"

	"github.com/Eursukkul/hustle-events/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
	Update(ctx context.Context, profile *models.UserProfile) error
	Seed(ctx context.Context, profiles []models.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// Update writes every editable column of an existing profile.
func (r *profileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	res := r.db.WithContext(ctx).
		Model(&models.UserProfile{ID: profile.ID}).
		Select("*").Omit("id", "created_at").
		Updates(profile)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *profileRepository) Seed(ctx context.Context, profiles []models.UserProfile) error {
	if len(profiles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&profiles).Error
}
