package repository

import (
	"github.com/google/uuid"
	"github.com/workhive/workhive-backend/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Create(app *model.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) Exists(jobID, applicantID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.JobApplication{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}
