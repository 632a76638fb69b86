package repository

import (
	"github.com/google/uuid"
	"github.com/workhive/workhive-backend/internal/model"
	"gorm.io/gorm"
)

type EmployerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) *EmployerRepository {
	return &EmployerRepository{db}
}

// GetOrCreateByUserID lazily creates an employer profile the first time a
// user posts a job.
func (r *EmployerRepository) GetOrCreateByUserID(userID uuid.UUID, defaults model.EmployerProfile) (*model.EmployerProfile, error) {
	var employer model.EmployerProfile
	err := r.db.Where(model.EmployerProfile{UserID: userID}).Attrs(defaults).FirstOrCreate(&employer).Error
	return &employer, err
}
