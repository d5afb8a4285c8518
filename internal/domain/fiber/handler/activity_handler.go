package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/mailer"
	"github.com/opphub/opphub/internal/usecase"
	"github.com/opphub/opphub/internal/util"
)

type ActivityHandler struct {
	uc *usecase.ActivityUsecase
}

func NewActivityHandler(uc *usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

func (h *ActivityHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/opportunities/:id/apply", h.Apply)
	api.Post("/opportunities/:id/bookmark", h.ToggleBookmark)
	api.Get("/dashboard", h.Dashboard)
	api.Get("/applications", h.Applications)
	api.Patch("/applications/:id/status", h.UpdateStatus)
	api.Delete("/applications/:id", h.DeleteApplication)
	api.Get("/bookmarks", h.Bookmarks)
}

func (h *ActivityHandler) Apply(c *fiber.Ctx) error {
	opportunityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid opportunity id",
		}, err)
	}

	result, err := h.uc.Apply(currentUserID(c), opportunityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "opportunity not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to record application",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success record application",
		Data:    result,
	})
}

func (h *ActivityHandler) ToggleBookmark(c *fiber.Ctx) error {
	opportunityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid opportunity id",
		}, err)
	}

	bookmarked, err := h.uc.ToggleBookmark(currentUserID(c), opportunityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "opportunity not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to toggle bookmark",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success toggle bookmark",
		Data:    fiber.Map{"bookmarked": bookmarked},
	})
}

func (h *ActivityHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.uc.Dashboard(currentUserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load dashboard",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success load dashboard",
		Data:    data,
	})
}

func (h *ActivityHandler) Applications(c *fiber.Ctx) error {
	applications, err := h.uc.Applications(currentUserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list applications",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list applications",
		Data:    applications,
	})
}

func (h *ActivityHandler) UpdateStatus(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	app, err := h.uc.UpdateStatus(currentUserID(c), applicationID, body.Status, body.Notes)
	if err != nil {
		var unknownStatus *mailer.UnknownStatusError
		switch {
		case errors.As(err, &unknownStatus):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: unknownStatus.Error(),
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "application not found",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to update application status",
			}, err)
		}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update application status",
		Data:    app,
	})
}

func (h *ActivityHandler) DeleteApplication(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	if err := h.uc.DeleteApplication(currentUserID(c), applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "application not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to delete application",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete application",
	})
}

func (h *ActivityHandler) Bookmarks(c *fiber.Ctx) error {
	bookmarks, err := h.uc.Bookmarks(currentUserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list bookmarks",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list bookmarks",
		Data:    bookmarks,
	})
}
