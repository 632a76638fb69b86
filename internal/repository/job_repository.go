package repository

import (
	"time"

	"github.com/workhive/workhive-backend/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) FindByID(id string) (*model.Job, error) {
	var job model.Job
	err := r.db.Preload("Employer").First(&job, "id = ?", id).Error
	return &job, err
}

// ActiveJobs lists active jobs newest first with their employers loaded.
func (r *JobRepository) ActiveJobs(page, pageSize int) ([]model.Job, int64, error) {
	var total int64
	if err := r.db.Model(&model.Job{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := r.db.Preload("Employer").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	return jobs, total, err
}

// DeactivateExpired flips is_active off for active jobs past their
// deadline and reports how many rows changed.
func (r *JobRepository) DeactivateExpired(now time.Time) (int64, error) {
	result := r.db.Model(&model.Job{}).
		Where("is_active = ? AND expires_at < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *JobRepository) IncrementViews(id string) error {
	return r.db.Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *JobRepository) IncrementApplications(id string) error {
	return r.db.Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
}
