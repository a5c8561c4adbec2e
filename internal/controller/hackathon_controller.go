package controller

import (
	"hackteam-be/internal/dto"
	"hackteam-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHackathonController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type hackathonController struct {
	service service.IHackathonService
}

func NewHackathonController(service service.IHackathonService) IHackathonController {
	return &hackathonController{service: service}
}

func (c *hackathonController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/hackathons")
	h.Get("/", c.List)
}

func (c *hackathonController) List(ctx *fiber.Ctx) error {
	filter := dto.HackathonFilter{
		Search: ctx.Query("search"),
		Type:   ctx.Query("type"),
	}
	if filter.Type != "" && filter.Type != "online" && filter.Type != "offline" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "type must be 'online' or 'offline'",
		})
	}

	res, err := c.service.List(ctx.Context(), filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}
