package controller

import (
	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/authz"
	"consultly-be/internal/pkg/serverutils"
	"consultly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type promptController struct {
	service service.IPromptService
	policy  authz.Policy
}

func NewPromptController(service service.IPromptService, policy authz.Policy) IPromptController {
	return &promptController{service: service, policy: policy}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prompt/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)

	protected := h.Group("", serverutils.JwtMiddleware, serverutils.RequireWriteAccess(c.policy))
	protected.Post("", c.Create)
	protected.Put(":id", c.Update)
	protected.Delete(":id", c.Delete)
}

func (c *promptController) GetAll(ctx *fiber.Ctx) error {
	var query dto.ListPromptsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all prompts", res))
}

func (c *promptController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show prompt", res))
}

func (c *promptController) Create(ctx *fiber.Ctx) error {
	ownerId, _ := ctx.Locals("user_id").(string)

	var req dto.CreatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), ownerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create prompt", res))
}

func (c *promptController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update prompt", res))
}

func (c *promptController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete prompt", nil))
}
