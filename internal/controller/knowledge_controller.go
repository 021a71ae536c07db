package controller

import (
	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/authz"
	"consultly-be/internal/pkg/serverutils"
	"consultly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	GetChunks(ctx *fiber.Ctx) error
	SearchChunks(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	service service.IKnowledgeService
	policy  authz.Policy
}

func NewKnowledgeController(service service.IKnowledgeService, policy authz.Policy) IKnowledgeController {
	return &knowledgeController{service: service, policy: policy}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Get("", c.Search)
	h.Get("/chunks", c.SearchChunks)
	h.Get(":id", c.Show)
	h.Get(":id/chunks", c.GetChunks)

	protected := h.Group("", serverutils.JwtMiddleware, serverutils.RequireWriteAccess(c.policy))
	protected.Post("", c.Ingest)
	protected.Put(":id", c.Update)
	protected.Delete(":id", c.Delete)
}

func (c *knowledgeController) Search(ctx *fiber.Ctx) error {
	var query dto.SearchKnowledgeQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search knowledge", res))
}

func (c *knowledgeController) SearchChunks(ctx *fiber.Ctx) error {
	res, err := c.service.SearchChunks(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search knowledge chunks", res))
}

func (c *knowledgeController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show knowledge document", res))
}

func (c *knowledgeController) GetChunks(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.GetChunks(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge chunks", res))
}

func (c *knowledgeController) Ingest(ctx *fiber.Ctx) error {
	ownerId, _ := ctx.Locals("user_id").(string)

	var req dto.IngestKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Ingest(ctx.Context(), ownerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ingest knowledge document", res))
}

func (c *knowledgeController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateKnowledgeRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success update knowledge document", res))
}

func (c *knowledgeController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete knowledge document", nil))
}
