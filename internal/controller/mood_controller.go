package controller

import (
	"ai-mindsupport-be/internal/dto"
	"ai-mindsupport-be/internal/pkg/serverutils"
	"ai-mindsupport-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	LogMood(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type moodController struct {
	service service.IMoodService
}

func NewMoodController(service service.IMoodService) IMoodController {
	return &moodController{service: service}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mood/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/entries", c.LogMood)
	h.Get("/entries", c.GetHistory)
	h.Get("/stats", c.GetStats)
}

func (c *moodController) LogMood(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.LogMoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.LogMood(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success log mood", res))
}

func (c *moodController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get mood history", res))
}

// GetStats returns a null data field when the user has no entries yet.
func (c *moodController) GetStats(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetStats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get mood stats", res))
}
