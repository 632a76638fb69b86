package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/workhive/workhive-backend/internal/dto"
	"github.com/workhive/workhive-backend/internal/middleware"
	"github.com/workhive/workhive-backend/internal/usecase"
	"github.com/workhive/workhive-backend/internal/util"
	"gorm.io/gorm"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/jobs", h.Create)
	api.Get("/jobs/list", h.List)
	api.Get("/jobs/:jobID", h.Get)
	api.Post("/jobs/:jobID/apply", h.Apply)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.Title == "" || req.Description == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "title and description are required",
		})
	}

	job, err := h.uc.CreateJob(c.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job created successfully",
		Data:    fiber.Map{"job": job},
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, pagination, err := h.uc.ListJobs(c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success list jobs",
		Data:       fiber.Map{"jobs": jobs},
		Pagination: pagination,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.GetJob(c.Params("jobID"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get job",
		Data:    fiber.Map{"job": job},
	})
}

func (h *JobHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	app, err := h.uc.Apply(middleware.CurrentUser(c), c.Params("jobID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		case errors.Is(err, usecase.ErrAlreadyApplied):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "already applied to this job",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to apply",
			}, err)
		}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted",
		Data:    app,
	})
}
