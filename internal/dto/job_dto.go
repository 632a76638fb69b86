package dto

import (
	"github.com/dustin/go-humanize"
	"github.com/workhive/workhive-backend/internal/model"
)

// JobSummary is the public representation of a job used by listings,
// creation responses and real-time notifications.
type JobSummary struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	SalaryRange        string `json:"salary_range"`
	JobType            string `json:"job_type"`
	PostedDate         string `json:"posted_date"`
	Description        string `json:"description"`
	ExperienceRequired string `json:"experience_required"`
	IsRemote           bool   `json:"is_remote"`
	Status             string `json:"status"`
}

// NewJobSummary builds a JobSummary from a job with its employer loaded.
// Missing employer and salary information fall back to display defaults.
func NewJobSummary(job *model.Job) JobSummary {
	company := job.Employer.CompanyName
	if company == "" {
		company = "Unknown Company"
	}

	salaryRange := "Not specified"
	if job.SalaryMin != 0 && job.SalaryMax != 0 {
		salaryRange = "$" + humanize.Comma(job.SalaryMin) + " - $" + humanize.Comma(job.SalaryMax)
	}

	status := "inactive"
	if job.IsActive {
		status = "active"
	}

	return JobSummary{
		ID:                 job.ID.String(),
		Title:              job.Title,
		Company:            company,
		Location:           job.Location,
		SalaryRange:        salaryRange,
		JobType:            job.JobType,
		PostedDate:         job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Description:        truncateDescription(job.Description, 200),
		ExperienceRequired: job.ExperienceRequired,
		IsRemote:           job.IsRemote,
		Status:             status,
	}
}

func truncateDescription(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// JobUpdateFrame is the wire frame pushed over a seeker's real-time
// channel when a matching job is created.
type JobUpdateFrame struct {
	Type       string     `json:"type"`
	Job        JobSummary `json:"job"`
	MatchScore int        `json:"match_score"`
}

type CreateJobRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	JobType             string `json:"job_type"`
	ExperienceLevel     string `json:"experience_level"`
	MinYearsExperience  int    `json:"min_years_experience"`
	Location            string `json:"location"`
	RemoteWork          bool   `json:"remote_work"`
	SalaryMin           int64  `json:"salary_min"`
	SalaryMax           int64  `json:"salary_max"`
	ApplicationDeadline string `json:"application_deadline"`

	// Used to lazily create the employer profile on first post.
	Company            string `json:"company"`
	Website            string `json:"website"`
	CompanyDescription string `json:"company_description"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}
