package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/workhive/workhive-backend/internal/model"
)

func TestNewJobSummary(t *testing.T) {
	posted := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	job := &model.Job{
		ID:                 uuid.New(),
		Title:              "Platform Engineer",
		Location:           "Amsterdam",
		JobType:            model.JobTypeFullTime,
		ExperienceRequired: model.LevelSenior,
		SalaryMin:          60000,
		SalaryMax:          90000,
		IsRemote:           true,
		IsActive:           true,
		Description:        "short description",
		CreatedAt:          posted,
		Employer:           model.EmployerProfile{CompanyName: "Acme"},
	}

	got := NewJobSummary(job)

	assert.Equal(t, job.ID.String(), got.ID)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "$60,000 - $90,000", got.SalaryRange)
	assert.Equal(t, "2026-08-01T09:30:00Z", got.PostedDate)
	assert.Equal(t, "short description", got.Description)
	assert.Equal(t, "active", got.Status)
	assert.True(t, got.IsRemote)
}

func TestNewJobSummaryFallbacks(t *testing.T) {
	job := &model.Job{ID: uuid.New(), Title: "Intern"}

	got := NewJobSummary(job)

	assert.Equal(t, "Unknown Company", got.Company)
	assert.Equal(t, "Not specified", got.SalaryRange)
	assert.Equal(t, "inactive", got.Status)
}

func TestNewJobSummarySalaryRequiresBothBounds(t *testing.T) {
	job := &model.Job{ID: uuid.New(), SalaryMin: 50000}
	assert.Equal(t, "Not specified", NewJobSummary(job).SalaryRange)

	job = &model.Job{ID: uuid.New(), SalaryMax: 80000}
	assert.Equal(t, "Not specified", NewJobSummary(job).SalaryRange)
}

func TestNewJobSummaryTruncatesDescription(t *testing.T) {
	job := &model.Job{
		ID:          uuid.New(),
		Description: strings.Repeat("a", 250),
	}

	got := NewJobSummary(job)

	assert.Len(t, got.Description, 203)
	assert.True(t, strings.HasSuffix(got.Description, "..."))

	// Exactly at the limit is left alone.
	job.Description = strings.Repeat("b", 200)
	assert.Equal(t, job.Description, NewJobSummary(job).Description)
}
