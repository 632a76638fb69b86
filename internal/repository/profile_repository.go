package repository

import (
	"github.com/google/uuid"
	"github.com/workhive/workhive-backend/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) GetOrCreateByUserID(userID uuid.UUID) (*model.SeekerProfile, error) {
	var profile model.SeekerProfile
	err := r.db.Where(model.SeekerProfile{UserID: userID}).FirstOrCreate(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) FindByUserID(userID string) (*model.SeekerProfile, error) {
	var profile model.SeekerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	return &profile, err
}

func (r *ProfileRepository) Save(profile *model.SeekerProfile) error {
	return r.db.Save(profile).Error
}

// AllSeekerProfiles returns every profile for fan-out scoring. Full scan;
// acceptable at current scale.
func (r *ProfileRepository) AllSeekerProfiles() ([]model.SeekerProfile, error) {
	var profiles []model.SeekerProfile
	err := r.db.Find(&profiles).Error
	return profiles, err
}
