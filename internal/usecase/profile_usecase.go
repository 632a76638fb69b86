package usecase

import (
	"context"

	"github.com/workhive/workhive-backend/internal/dto"
	"github.com/workhive/workhive-backend/internal/model"
	"github.com/workhive/workhive-backend/internal/repository"
	"github.com/workhive/workhive-backend/internal/resume"
	"go.uber.org/zap"
)

type ProfileUsecase struct {
	profiles  *repository.ProfileRepository
	users     *repository.UserRepository
	skills    *repository.SkillRepository
	processor *resume.Processor
	logger    *zap.Logger
}

func NewProfileUsecase(profiles *repository.ProfileRepository, users *repository.UserRepository, skills *repository.SkillRepository, processor *resume.Processor, logger *zap.Logger) *ProfileUsecase {
	return &ProfileUsecase{
		profiles:  profiles,
		users:     users,
		skills:    skills,
		processor: processor,
		logger:    logger,
	}
}

func (uc *ProfileUsecase) GetOwnProfile(user *model.User) (*model.SeekerProfile, error) {
	return uc.profiles.GetOrCreateByUserID(user.ID)
}

func (uc *ProfileUsecase) GetProfileByUserID(userID string) (*model.SeekerProfile, error) {
	return uc.profiles.FindByUserID(userID)
}

// UpdateProfile applies a partial update, persists it and refreshes the
// completion flag on the owning user.
func (uc *ProfileUsecase) UpdateProfile(user *model.User, req *dto.ProfileUpdateRequest) (*model.SeekerProfile, error) {
	profile, err := uc.profiles.GetOrCreateByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(profile, req)
	if err := uc.profiles.Save(profile); err != nil {
		return nil, err
	}
	if err := uc.refreshCompletion(user, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadResume runs the extraction pipeline and persists the results onto
// the seeker profile. Pipeline errors propagate unchanged so the handler
// can map them to status codes.
func (uc *ProfileUsecase) UploadResume(ctx context.Context, user *model.User, savedPath string) (*resume.ExtractionResult, error) {
	result, err := uc.processor.Process(ctx, savedPath)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profiles.GetOrCreateByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	profile.ResumePath = savedPath
	profile.ExtractedSkills = result.Skills
	profile.ExtractedExperience = result.Experience
	if err := uc.profiles.Save(profile); err != nil {
		return nil, err
	}
	if err := uc.refreshCompletion(user, profile); err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ProfileUsecase) ExtractedSkills(userID string) ([]string, error) {
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return profile.ExtractedSkills, nil
}

// UpdateUserSkills upserts the user's self-declared skills, creating
// taxonomy rows for unseen skill names.
func (uc *ProfileUsecase) UpdateUserSkills(user *model.User, inputs []dto.UserSkillInput) ([]model.UserSkill, error) {
	for _, input := range inputs {
		skill, err := uc.skills.FindOrCreateByName(input.SkillName)
		if err != nil {
			return nil, err
		}
		us := &model.UserSkill{
			UserID:            user.ID,
			SkillID:           skill.ID,
			ProficiencyLevel:  input.ProficiencyLevel,
			YearsOfExperience: input.YearsOfExperience,
		}
		if err := uc.skills.UpsertUserSkill(us); err != nil {
			return nil, err
		}
	}
	return uc.skills.FindUserSkills(user.ID)
}

// refreshCompletion recomputes the completion flag from the explicit
// profile fields and persists it on the user.
func (uc *ProfileUsecase) refreshCompletion(user *model.User, profile *model.SeekerProfile) error {
	user.IsProfileComplete = profile.IsComplete()
	return uc.users.Save(user)
}

func applyProfileUpdate(profile *model.SeekerProfile, req *dto.ProfileUpdateRequest) {
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.PortfolioURL != nil {
		profile.PortfolioURL = *req.PortfolioURL
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		profile.GithubURL = *req.GithubURL
	}
	if req.ExperienceLevel != nil {
		profile.ExperienceLevel = *req.ExperienceLevel
	}
	if req.TotalExperienceYears != nil {
		profile.TotalExperienceYears = *req.TotalExperienceYears
	}
	if req.CurrentLocation != nil {
		profile.CurrentLocation = *req.CurrentLocation
	}
	if req.PreferredLocation != nil {
		profile.PreferredLocation = *req.PreferredLocation
	}
	if req.PreferredJobType != nil {
		profile.PreferredJobType = *req.PreferredJobType
	}
	if req.WillingToRelocate != nil {
		profile.WillingToRelocate = *req.WillingToRelocate
	}
	if req.ExpectedSalaryMin != nil {
		profile.ExpectedSalaryMin = *req.ExpectedSalaryMin
	}
	if req.ExpectedSalaryMax != nil {
		profile.ExpectedSalaryMax = *req.ExpectedSalaryMax
	}
	if req.SalaryCurrency != nil {
		profile.SalaryCurrency = *req.SalaryCurrency
	}
	if req.Availability != nil {
		profile.Availability = *req.Availability
	}
}
