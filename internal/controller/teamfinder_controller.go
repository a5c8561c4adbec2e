package controller

import (
	"hackteam-be/internal/dto"
	"hackteam-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITeamFinderController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Skills(ctx *fiber.Ctx) error
}

type teamFinderController struct {
	service service.ITeamFinderService
}

func NewTeamFinderController(service service.ITeamFinderService) ITeamFinderController {
	return &teamFinderController{service: service}
}

func (c *teamFinderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/teammates")
	h.Get("/", c.List)
	h.Get("/skills", c.Skills)
}

func (c *teamFinderController) List(ctx *fiber.Ctx) error {
	filter := dto.TeammateFilter{
		Search: ctx.Query("search"),
		Skill:  ctx.Query("skill"),
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

func (c *teamFinderController) Skills(ctx *fiber.Ctx) error {
	res, err := c.service.Skills(ctx.Context())
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
