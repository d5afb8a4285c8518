package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/catalog"
	"github.com/opphub/opphub/internal/middleware"
	"github.com/opphub/opphub/internal/response"
	"github.com/opphub/opphub/internal/usecase"
	"github.com/opphub/opphub/internal/util"
)

type OpportunityHandler struct {
	uc *usecase.OpportunityUsecase
}

func NewOpportunityHandler(uc *usecase.OpportunityUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

func (h *OpportunityHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/opportunities", h.List)
	api.Get("/opportunities/counts", h.Counts)
	api.Get("/opportunities/:id", h.Get)
	api.Post("/admin/seed", h.Seed)
}

func (h *OpportunityHandler) List(c *fiber.Ctx) error {
	criteria := catalog.Criteria{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Source:     c.Query("source"),
		Difficulty: c.Query("difficulty"),
		Location:   c.Query("location"),
	}
	urgentOnly := c.QueryBool("urgent")

	items, err := h.uc.Browse(currentUserID(c), criteria, urgentOnly)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list opportunities",
		}, err)
	}

	pagination, start, end := response.Paginate(len(items), c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list opportunities",
		Data:       items[start:end],
		Pagination: &pagination,
	})
}

func (h *OpportunityHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.uc.Counts()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to count opportunities",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success count opportunities",
		Data:    counts,
	})
}

func (h *OpportunityHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid opportunity id",
		}, err)
	}

	item, err := h.uc.Get(currentUserID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "opportunity not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get opportunity",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get opportunity",
		Data:    item,
	})
}

func (h *OpportunityHandler) Seed(c *fiber.Ctx) error {
	if err := h.uc.SeedCatalog(); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to seed catalog",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success seed catalog",
	})
}

func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalUserID).(string); ok {
		return id
	}
	return ""
}
