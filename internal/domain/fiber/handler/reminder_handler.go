package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opphub/opphub/internal/dto"
	"github.com/opphub/opphub/internal/usecase"
	"github.com/opphub/opphub/internal/util"
)

type ReminderHandler struct {
	uc *usecase.ReminderUsecase
}

func NewReminderHandler(uc *usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

func (h *ReminderHandler) RegisterRoutes(functions fiber.Router) {
	functions.Post("/deadline-reminders", h.SendDeadlineReminder)
}

// SendDeadlineReminder is the external trigger used by schedulers outside the
// service. Validation failures never reach the mail transport.
func (h *ReminderHandler) SendDeadlineReminder(c *fiber.Ctx) error {
	var req dto.DeadlineReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if err := h.uc.SendDeadlineReminder(c.UserContext(), req); err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: formErr.Message,
				Details: formErr.Errors,
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to send deadline reminder",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success send deadline reminder",
		Data:    fiber.Map{"recipient": req.UserEmail, "opportunity": req.OpportunityTitle},
	})
}
