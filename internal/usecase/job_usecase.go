package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/workhive/workhive-backend/internal/dto"
	"github.com/workhive/workhive-backend/internal/matching"
	"github.com/workhive/workhive-backend/internal/model"
	"github.com/workhive/workhive-backend/internal/notify"
	"github.com/workhive/workhive-backend/internal/repository"
	"github.com/workhive/workhive-backend/internal/response"
	"github.com/workhive/workhive-backend/internal/resume"
	"go.uber.org/zap"
)

// ErrAlreadyApplied is returned when a seeker applies twice to one job.
var ErrAlreadyApplied = errors.New("already applied to this job")

const defaultJobLifetime = 30 * 24 * time.Hour

type JobUsecase struct {
	jobs         *repository.JobRepository
	employers    *repository.EmployerRepository
	profiles     *repository.ProfileRepository
	applications *repository.ApplicationRepository
	fanout       *notify.Fanout
	logger       *zap.Logger
}

func NewJobUsecase(jobs *repository.JobRepository, employers *repository.EmployerRepository, profiles *repository.ProfileRepository, applications *repository.ApplicationRepository, fanout *notify.Fanout, logger *zap.Logger) *JobUsecase {
	return &JobUsecase{
		jobs:         jobs,
		employers:    employers,
		profiles:     profiles,
		applications: applications,
		fanout:       fanout,
		logger:       logger,
	}
}

// CreateJob lazily creates the poster's employer profile, persists the
// job with skill requirements recognized from its description, and fires
// the notification fan-out before returning.
func (uc *JobUsecase) CreateJob(ctx context.Context, user *model.User, req *dto.CreateJobRequest) (*dto.JobSummary, error) {
	companyName := req.Company
	if companyName == "" {
		companyName = "Unknown Company"
	}
	employer, err := uc.employers.GetOrCreateByUserID(user.ID, model.EmployerProfile{
		CompanyName:        companyName,
		CompanyWebsite:     req.Website,
		CompanyDescription: req.CompanyDescription,
		Industry:           "Technology",
		CompanySize:        "small",
	})
	if err != nil {
		return nil, err
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = model.JobTypeFullTime
	}
	experienceRequired := req.ExperienceLevel
	if experienceRequired == "" {
		experienceRequired = model.LevelMid
	}

	expiresAt := time.Now().Add(defaultJobLifetime)
	if req.ApplicationDeadline != "" {
		if deadline, err := time.Parse(time.RFC3339, req.ApplicationDeadline); err == nil {
			expiresAt = deadline
		}
	}

	job := model.Job{
		EmployerID:         employer.ID,
		Title:              req.Title,
		Description:        req.Description,
		JobType:            jobType,
		ExperienceRequired: experienceRequired,
		MinYearsExperience: req.MinYearsExperience,
		Location:           req.Location,
		IsRemote:           req.RemoteWork,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		ExtractedSkills:    resume.RecognizeSkills(strings.ToLower(req.Description), resume.Taxonomy()),
		IsActive:           true,
		ExpiresAt:          expiresAt,
	}
	if err := uc.jobs.Create(&job); err != nil {
		return nil, err
	}
	job.Employer = *employer

	// Post-create hook: score every seeker and notify the good matches.
	uc.fanout.OnJobCreated(ctx, &job)

	summary := dto.NewJobSummary(&job)
	return &summary, nil
}

// ListJobs returns active jobs newest first with a pagination envelope.
func (uc *JobUsecase) ListJobs(page, pageSize int) ([]dto.JobSummary, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	jobs, total, err := uc.jobs.ActiveJobs(page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]dto.JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, dto.NewJobSummary(&jobs[i]))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from := 0
	to := 0
	if len(jobs) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(jobs) - 1
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
	return summaries, pagination, nil
}

// GetJob returns any job by id regardless of its active flag and bumps
// the view counter.
func (uc *JobUsecase) GetJob(id string) (*dto.JobSummary, error) {
	job, err := uc.jobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := uc.jobs.IncrementViews(id); err != nil {
		uc.logger.Warn("bumping view count failed", zap.String("job_id", id), zap.Error(err))
	}
	summary := dto.NewJobSummary(job)
	return &summary, nil
}

// Apply records an application with a match-score snapshot taken at
// application time.
func (uc *JobUsecase) Apply(user *model.User, jobID string, req *dto.ApplyRequest) (*model.JobApplication, error) {
	job, err := uc.jobs.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profiles.GetOrCreateByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.applications.Exists(job.ID, profile.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	breakdown := matching.ScoreBreakdown(profile, job)
	app := model.JobApplication{
		JobID:                job.ID,
		ApplicantID:          profile.ID,
		CoverLetter:          req.CoverLetter,
		OverallMatchScore:    breakdown.Total(),
		SkillMatchScore:      breakdown.Skills,
		ExperienceMatchScore: breakdown.Experience,
		LocationMatchScore:   breakdown.Location,
		Status:               model.ApplicationPending,
	}
	if err := uc.applications.Create(&app); err != nil {
		return nil, err
	}
	if err := uc.jobs.IncrementApplications(jobID); err != nil {
		uc.logger.Warn("bumping application count failed", zap.String("job_id", jobID), zap.Error(err))
	}
	return &app, nil
}
