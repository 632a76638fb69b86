package handler

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/workhive/workhive-backend/internal/dto"
	"github.com/workhive/workhive-backend/internal/middleware"
	"github.com/workhive/workhive-backend/internal/resume"
	"github.com/workhive/workhive-backend/internal/usecase"
	"github.com/workhive/workhive-backend/internal/util"
	"gorm.io/gorm"
)

const (
	maxResumeSize   = 5 * 1024 * 1024
	resumeUploadDir = "./uploads/resumes/"
	// Large files must not hold the upload request forever.
	extractionTimeout = 30 * time.Second
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/users/profile", h.GetProfile)
	api.Put("/users/job-seeker-profile", h.UpdateProfile)
	api.Post("/users/upload-resume", h.UploadResume)
	api.Post("/users/skills", h.UpdateSkills)
	api.Get("/users/:userID/profile", h.GetProfileByID)
	api.Get("/users/:userID/extracted-skills", h.ExtractedSkills)
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.uc.GetOwnProfile(middleware.CurrentUser(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) GetProfileByID(c *fiber.Ctx) error {
	profile, err := h.uc.GetProfileByUserID(c.Params("userID"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "profile not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	profile, err := h.uc.UpdateProfile(middleware.CurrentUser(c), &req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > maxResumeSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	savePath := filepath.Join(resumeUploadDir, file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), extractionTimeout)
	defer cancel()

	result, err := h.uc.UploadResume(ctx, middleware.CurrentUser(c), savePath)
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			code = fiber.StatusBadRequest
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: err.Error(),
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Resume uploaded successfully",
		Data: fiber.Map{
			"extracted_skills":     result.Skills,
			"extracted_experience": result.Experience,
			"text_length":          result.TextLength,
		},
	})
}

func (h *ProfileHandler) ExtractedSkills(c *fiber.Ctx) error {
	skills, err := h.uc.ExtractedSkills(c.Params("userID"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "profile not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load extracted skills",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get extracted skills",
		Data:    fiber.Map{"extracted_skills": skills},
	})
}

func (h *ProfileHandler) UpdateSkills(c *fiber.Ctx) error {
	var inputs []dto.UserSkillInput
	if err := c.BodyParser(&inputs); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	skills, err := h.uc.UpdateUserSkills(middleware.CurrentUser(c), inputs)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update skills",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update skills",
		Data:    skills,
	})
}
