package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationPending     = "pending"
	ApplicationUnderReview = "under_review"
	ApplicationShortlisted = "shortlisted"
	ApplicationInterview   = "interview_scheduled"
	ApplicationRejected    = "rejected"
	ApplicationHired       = "hired"
)

type JobApplication struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID       uuid.UUID     `gorm:"type:uuid;index:idx_job_applicant,unique" json:"job_id"`
	Job         Job           `gorm:"foreignKey:JobID" json:"-"`
	ApplicantID uuid.UUID     `gorm:"type:uuid;index:idx_job_applicant,unique" json:"applicant_id"`
	Applicant   SeekerProfile `gorm:"foreignKey:ApplicantID" json:"-"`

	CoverLetter string `gorm:"type:text" json:"cover_letter"`

	// Match score snapshot taken at application time.
	OverallMatchScore    int `gorm:"default:0" json:"overall_match_score"`
	SkillMatchScore      int `gorm:"default:0" json:"skill_match_score"`
	ExperienceMatchScore int `gorm:"default:0" json:"experience_match_score"`
	LocationMatchScore   int `gorm:"default:0" json:"location_match_score"`

	Status        string `gorm:"type:varchar(20);default:pending" json:"status"`
	EmployerNotes string `gorm:"type:text" json:"employer_notes"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
