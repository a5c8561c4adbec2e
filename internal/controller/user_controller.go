package controller

import (
	"errors"

	"hackteam-be/internal/dto"
	"hackteam-be/internal/pkg/serverutils"
	"hackteam-be/internal/service"
	"hackteam-be/internal/store/session"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Me(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	AddSkill(ctx *fiber.Ctx) error
	RemoveSkill(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/users", authMiddleware)
	h.Get("/me", c.Me)
	h.Put("/me", c.UpdateProfile)
	h.Post("/me/skills", c.AddSkill)
	h.Delete("/me/skills", c.RemoveSkill)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	res, err := c.service.Me(ctx.Context())
	if err != nil {
		return respondUserError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.UpdateProfile(ctx.Context(), &req)
	if err != nil {
		return respondUserError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Profile updated",
		"data":    res,
	})
}

func (c *userController) AddSkill(ctx *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.AddSkill(ctx.Context(), req.Skill)
	if err != nil {
		return respondUserError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Skill added",
		"data":    res,
	})
}

func (c *userController) RemoveSkill(ctx *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.RemoveSkill(ctx.Context(), req.Skill)
	if err != nil {
		return respondUserError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Skill removed",
		"data":    res,
	})
}

func respondUserError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, session.ErrNoActiveSession) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"code":    500,
		"message": err.Error(),
	})
}
