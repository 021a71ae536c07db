package controller

import (
	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/authz"
	"consultly-be/internal/pkg/serverutils"
	"consultly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	MarkHandled(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
	policy  authz.Policy
}

func NewContactController(service service.IContactService, policy authz.Policy) IContactController {
	return &contactController{service: service, policy: policy}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/contact/v1")
	h.Post("", c.Submit)

	protected := h.Group("", serverutils.JwtMiddleware, serverutils.RequireWriteAccess(c.policy))
	protected.Get("", c.GetAll)
	protected.Patch(":id/handled", c.MarkHandled)
	protected.Delete(":id", c.Delete)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit contact form", res))
}

func (c *contactController) GetAll(ctx *fiber.Ctx) error {
	var handledFilter *bool
	if raw := ctx.Query("handled"); raw != "" {
		handled := raw == "true"
		handledFilter = &handled
	}

	res, err := c.service.GetAll(ctx.Context(), handledFilter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get contact submissions", res))
}

func (c *contactController) MarkHandled(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.MarkHandled(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark submission handled", nil))
}

func (c *contactController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete submission", nil))
}
