package controller

import (
	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/authz"
	"consultly-be/internal/pkg/serverutils"
	"consultly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPostController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowBySlug(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetPublished(ctx *fiber.Ctx) error
}

type postController struct {
	service service.IPostService
	policy  authz.Policy
}

func NewPostController(service service.IPostService, policy authz.Policy) IPostController {
	return &postController{service: service, policy: policy}
}

func (c *postController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/post/v1")
	h.Get("/published", c.GetPublished)
	h.Get("/slug/:slug", c.ShowBySlug)
	h.Get(":id", c.Show)

	protected := h.Group("", serverutils.JwtMiddleware, serverutils.RequireWriteAccess(c.policy))
	protected.Get("", c.GetAll)
	protected.Post("", c.Create)
	protected.Put(":id", c.Update)
	protected.Delete(":id", c.Delete)
}

// GetPublished is the public blog listing; drafts and archived posts never
// appear here.
func (c *postController) GetPublished(ctx *fiber.Ctx) error {
	res, err := c.service.GetPublished(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get published posts", res))
}

func (c *postController) GetAll(ctx *fiber.Ctx) error {
	var query dto.ListPostsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all posts", res))
}

func (c *postController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show post", res))
}

func (c *postController) ShowBySlug(ctx *fiber.Ctx) error {
	res, err := c.service.ShowBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show post", res))
}

func (c *postController) Create(ctx *fiber.Ctx) error {
	authorId, _ := ctx.Locals("user_id").(string)

	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), authorId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create post", res))
}

func (c *postController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdatePostRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success update post", res))
}

func (c *postController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete post", nil))
}
