package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
	LevelExpert = "expert"
)

// ExperienceLevelOrdinal maps a level to its position on the seniority
// ladder. Returns -1 for unknown or empty levels so that distance checks
// against them never award points.
func ExperienceLevelOrdinal(level string) int {
	switch level {
	case LevelEntry:
		return 0
	case LevelMid:
		return 1
	case LevelSenior:
		return 2
	case LevelExpert:
		return 3
	default:
		return -1
	}
}

type SeekerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID" json:"-"`

	FirstName string `gorm:"type:varchar(50)" json:"first_name"`
	LastName  string `gorm:"type:varchar(50)" json:"last_name"`
	Title     string `gorm:"type:varchar(100)" json:"title"`
	Bio       string `gorm:"type:varchar(500)" json:"bio"`

	ResumePath   string `gorm:"type:varchar(255)" json:"resume_path"`
	PortfolioURL string `gorm:"type:varchar(255)" json:"portfolio_url"`
	LinkedinURL  string `gorm:"type:varchar(255)" json:"linkedin_url"`
	GithubURL    string `gorm:"type:varchar(255)" json:"github_url"`

	ExperienceLevel      string `gorm:"type:varchar(20)" json:"experience_level"`
	TotalExperienceYears int    `gorm:"default:0" json:"total_experience_years"`

	CurrentLocation   string `gorm:"type:varchar(100)" json:"current_location"`
	PreferredLocation string `gorm:"type:varchar(100)" json:"preferred_location"`
	PreferredJobType  string `gorm:"type:varchar(20)" json:"preferred_job_type"`
	WillingToRelocate bool   `gorm:"default:false" json:"willing_to_relocate"`

	ExpectedSalaryMin int64  `json:"expected_salary_min"`
	ExpectedSalaryMax int64  `json:"expected_salary_max"`
	SalaryCurrency    string `gorm:"type:varchar(3);default:USD" json:"salary_currency"`

	// immediate, 2_weeks, 1_month, 3_months
	Availability string `gorm:"type:varchar(20)" json:"availability"`

	ExtractedSkills     StringList        `gorm:"type:jsonb" json:"extracted_skills"`
	ExtractedExperience ExperienceSummary `gorm:"type:jsonb" json:"extracted_experience"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// requiredFields lists the explicit profile fields counted toward
// completion. Résumé-derived fields deliberately do not count.
func (p *SeekerProfile) requiredFields() []bool {
	return []bool{
		p.FirstName != "",
		p.LastName != "",
		p.Title != "",
		p.CurrentLocation != "",
		p.ExperienceLevel != "",
		p.TotalExperienceYears != 0,
		p.Availability != "",
	}
}

// CompletionPercent is the share of the seven required fields that are set.
func (p *SeekerProfile) CompletionPercent() float64 {
	fields := p.requiredFields()
	completed := 0
	for _, present := range fields {
		if present {
			completed++
		}
	}
	return float64(completed) / float64(len(fields)) * 100
}

// IsComplete reports whether the profile passes the 80% completion bar,
// which with seven fields means at least six are present.
func (p *SeekerProfile) IsComplete() bool {
	return p.CompletionPercent() >= 80
}
