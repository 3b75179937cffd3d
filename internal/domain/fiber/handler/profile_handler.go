package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/projectlaunchpad/intake/internal/dto"
	"github.com/projectlaunchpad/intake/internal/repository"
	"github.com/projectlaunchpad/intake/internal/usecase"
	"github.com/projectlaunchpad/intake/internal/util"
	"gorm.io/gorm"
)

// ProfileHandler is the edit screen's surface: one read endpoint, manual
// insert endpoints, and row-by-row deletes.
type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/profile", h.GetProfile)
	app.Post("/profile/:id/skills", h.AddSkill)
	app.Post("/profile/:id/projects", h.AddProject)
	app.Post("/profile/:id/experience", h.AddExperience)
	app.Delete("/skills/:id", h.DeleteSkill)
	app.Delete("/projects/:id", h.DeleteProject)
	app.Delete("/experience/:id", h.DeleteExperience)
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "email is required",
		})
	}
	profile, err := h.uc.GetProfileByEmail(email)
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, gorm.ErrRecordNotFound) {
			code = fiber.StatusNotFound
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: "profile not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) AddSkill(c *fiber.Ctx) error {
	freelancerID, err := paramID(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid freelancer id",
		}, err)
	}
	res, err := h.uc.AddSkill(freelancerID, c.FormValue("skill"))
	return h.insertResponse(c, "skill", res, err)
}

func (h *ProfileHandler) AddProject(c *fiber.Ctx) error {
	freelancerID, err := paramID(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid freelancer id",
		}, err)
	}
	res, err := h.uc.AddProject(freelancerID, c.FormValue("title"), c.FormValue("description"))
	return h.insertResponse(c, "project", res, err)
}

func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	freelancerID, err := paramID(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid freelancer id",
		}, err)
	}
	entry := dto.ExperienceEntry{
		Title:       c.FormValue("title"),
		Company:     c.FormValue("company"),
		Duration:    c.FormValue("duration"),
		Description: c.FormValue("description"),
	}
	res, err := h.uc.AddExperience(freelancerID, entry)
	return h.insertResponse(c, "experience", res, err)
}

func (h *ProfileHandler) insertResponse(c *fiber.Ctx, kind string, res repository.BatchResult, err error) error {
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: formErr.Message,
				Details: formErr.Errors,
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to add " + kind,
		}, err)
	}
	if res.Failed > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to add " + kind,
			Details: res,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success add " + kind,
		Data:    res,
	})
}

func (h *ProfileHandler) DeleteSkill(c *fiber.Ctx) error {
	return h.deleteRow(c, "skill", h.uc.RemoveSkill)
}

func (h *ProfileHandler) DeleteProject(c *fiber.Ctx) error {
	return h.deleteRow(c, "project", h.uc.RemoveProject)
}

func (h *ProfileHandler) DeleteExperience(c *fiber.Ctx) error {
	return h.deleteRow(c, "experience", h.uc.RemoveExperience)
}

func (h *ProfileHandler) deleteRow(c *fiber.Ctx, kind string, remove func(uint) error) error {
	id, err := paramID(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid " + kind + " id",
		}, err)
	}
	if err := remove(id); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to delete " + kind,
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete " + kind,
	})
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
