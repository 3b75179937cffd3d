package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/projectlaunchpad/intake/internal/usecase"
	"github.com/projectlaunchpad/intake/internal/util"
)

type ProjectHandler struct {
	uc *usecase.ProjectUsecase
}

func NewProjectHandler(uc *usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/projects", h.Create)
	app.Get("/projects", h.List)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	freelancers, _ := strconv.Atoi(c.FormValue("no_of_freelancers"))
	budget, _ := strconv.Atoi(c.FormValue("budget"))

	form := usecase.ProjectForm{
		ProjectName:     c.FormValue("project_name"),
		Description:     c.FormValue("description"),
		Domain:          c.FormValue("domain"),
		SkillsRequired:  c.FormValue("skills_required"),
		NoOfFreelancers: freelancers,
		Budget:          budget,
		Deadline:        c.FormValue("deadline"),
	}

	project, err := h.uc.Submit(form)
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
			Message: "failed to save project",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Project saved successfully",
		Data:    project,
	})
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.uc.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list projects",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get projects",
		Data:    projects,
	})
}
