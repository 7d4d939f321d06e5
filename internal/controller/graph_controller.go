package controller

import (
	"neuranote-be/internal/pkg/serverutils"
	"neuranote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGraphController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type graphController struct {
	graphService service.IGraphService
}

func NewGraphController(graphService service.IGraphService) IGraphController {
	return &graphController{
		graphService: graphService,
	}
}

func (c *graphController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/graph/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
}

func (c *graphController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.graphService.BuildGraph(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success build graph", res))
}
