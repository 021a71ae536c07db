package controller

import (
	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/authz"
	"consultly-be/internal/pkg/serverutils"
	"consultly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkflowController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	ResolvePrompts(ctx *fiber.Ctx) error
}

type workflowController struct {
	service service.IWorkflowService
	policy  authz.Policy
}

func NewWorkflowController(service service.IWorkflowService, policy authz.Policy) IWorkflowController {
	return &workflowController{service: service, policy: policy}
}

func (c *workflowController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workflow/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Get(":id/prompts", c.ResolvePrompts)

	protected := h.Group("", serverutils.JwtMiddleware, serverutils.RequireWriteAccess(c.policy))
	protected.Post("", c.Create)
	protected.Put(":id", c.Update)
	protected.Delete(":id", c.Delete)
}

func (c *workflowController) GetAll(ctx *fiber.Ctx) error {
	var query dto.ListWorkflowsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all workflows", res))
}

func (c *workflowController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show workflow", res))
}

func (c *workflowController) ResolvePrompts(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.ResolveStepPrompts(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve workflow prompts", res))
}

func (c *workflowController) Create(ctx *fiber.Ctx) error {
	ownerId, _ := ctx.Locals("user_id").(string)

	var req dto.CreateWorkflowRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success create workflow", res))
}

func (c *workflowController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateWorkflowRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success update workflow", res))
}

func (c *workflowController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete workflow", nil))
}
