package controller

import (
	"consultly-be/internal/pkg/authz"
	"consultly-be/internal/pkg/logger"
	"consultly-be/internal/pkg/serverutils"
	"consultly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
	logger  logger.ILogger
	policy  authz.Policy
}

func NewDashboardController(service service.IDashboardService, log logger.ILogger, policy authz.Policy) IDashboardController {
	return &dashboardController{service: service, logger: log, policy: policy}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Use(serverutils.JwtMiddleware, serverutils.RequireWriteAccess(c.policy))
	h.Get("/stats", c.GetStats)
	h.Get("/logs", c.GetLogs)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

// GetLogs exposes the application log tail for the admin dashboard.
func (c *dashboardController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", logs))
}
