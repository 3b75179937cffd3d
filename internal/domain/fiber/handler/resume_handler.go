package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/projectlaunchpad/intake/internal/middleware"
	"github.com/projectlaunchpad/intake/internal/usecase"
	"github.com/projectlaunchpad/intake/internal/util"
	"gorm.io/gorm"
)

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/resumes", middleware.RateLimiter(1, 4*time.Second), h.Upload)
	app.Get("/resumes/:id/parsed", h.Parsed)
}

// Upload runs one resume through the whole ingestion pipeline synchronously.
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > 5*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	f, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}

	result, err := h.uc.Ingest(file.Filename, data)
	if err != nil {
		return h.ingestError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Resume parsed and saved successfully",
		Data:    result,
	})
}

// ingestError maps the pipeline failure classes onto user-facing responses.
func (h *ResumeHandler) ingestError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrNoText):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "No text could be extracted from the file.",
		}, err)
	case errors.Is(err, usecase.ErrExtraction):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Could not read the uploaded file.",
		}, err)
	case errors.Is(err, usecase.ErrUpstream):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "The resume parsing service is unavailable.",
		}, err)
	case errors.Is(err, usecase.ErrNoJSON):
		// The raw file was already persisted before this failure.
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Failed to extract valid JSON from the model reply.",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to process resume",
		}, err)
	}
}

func (h *ResumeHandler) Parsed(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid resume id",
		}, err)
	}
	parsed, err := h.uc.FetchParsedResume(uint(id))
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, gorm.ErrRecordNotFound) {
			code = fiber.StatusNotFound
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: "parsed resume not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get parsed resume",
		Data:    json.RawMessage(parsed),
	})
}
