package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opphub/opphub/internal/middleware"
	"github.com/opphub/opphub/internal/usecase"
	"github.com/opphub/opphub/internal/util"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/me", h.Me)
}

// Me returns the caller's profile, creating it on first sign-in.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	email, _ := c.Locals(middleware.LocalUserEmail).(string)
	name, _ := c.Locals(middleware.LocalUserName).(string)

	user, err := h.uc.EnsureProfile(currentUserID(c), email, name)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success load profile",
		Data:    user,
	})
}
