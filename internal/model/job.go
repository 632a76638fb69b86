package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeFreelance  = "freelance"
)

type Job struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployerID uuid.UUID       `gorm:"type:uuid;index" json:"employer_id"`
	Employer   EmployerProfile `gorm:"foreignKey:EmployerID" json:"-"`

	Title       string `gorm:"type:varchar(200)" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	JobType            string `gorm:"type:varchar(20)" json:"job_type"`
	ExperienceRequired string `gorm:"type:varchar(20)" json:"experience_required"`
	MinYearsExperience int    `gorm:"default:0" json:"min_years_experience"`

	Location string `gorm:"type:varchar(100)" json:"location"`
	IsRemote bool   `gorm:"default:false" json:"is_remote"`

	SalaryMin      int64  `json:"salary_min"`
	SalaryMax      int64  `json:"salary_max"`
	SalaryCurrency string `gorm:"type:varchar(3);default:USD" json:"salary_currency"`

	// Skill requirements recognized from the description at creation time.
	ExtractedSkills StringList `gorm:"type:jsonb" json:"extracted_skills"`

	IsActive          bool `gorm:"default:true" json:"is_active"`
	ApplicationsCount int  `gorm:"default:0" json:"applications_count"`
	ViewsCount        int  `gorm:"default:0" json:"views_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// JobSkill ties a job to a taxonomy skill with an importance tier.
type JobSkill struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID   uuid.UUID `gorm:"type:uuid;index" json:"job_id"`
	Job     Job       `gorm:"foreignKey:JobID" json:"-"`
	SkillID uuid.UUID `gorm:"type:uuid;index" json:"skill_id"`
	Skill   Skill     `gorm:"foreignKey:SkillID" json:"-"`

	// required, preferred, nice_to_have
	Importance string `gorm:"type:varchar(20)" json:"importance"`
	// beginner, intermediate, advanced, expert
	MinProficiency string `gorm:"type:varchar(20)" json:"min_proficiency"`
}
