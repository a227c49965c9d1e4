package controller

import (
	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/pkg/serverutils"
	"crm-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IArticleController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ChangeStatus(ctx *fiber.Ctx) error
	RecordView(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type articleController struct {
	articleService service.IArticleService
}

func NewArticleController(articleService service.IArticleService) IArticleController {
	return &articleController{
		articleService: articleService,
	}
}

func (c *articleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/article/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id/status", c.ChangeStatus)
	h.Post(":id/view", c.RecordView)
	h.Delete(":id", c.Delete)
}

func (c *articleController) List(ctx *fiber.Ctx) error {
	q := dto.ListArticlesQuery{
		Search:   ctx.Query("search", ""),
		Category: ctx.Query("category", ""),
		Status:   ctx.Query("status", ""),
	}

	res, err := c.articleService.List(ctx.Context(), &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list articles", res))
}

func (c *articleController) Show(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.articleService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show article", res))
}

func (c *articleController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpsertArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create article", res))
}

func (c *articleController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpsertArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update article", res))
}

func (c *articleController) ChangeStatus(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.ChangeArticleStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.articleService.ChangeStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success change article status", res))
}

func (c *articleController) RecordView(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.articleService.IncrementViews(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success record article view", nil))
}

func (c *articleController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.articleService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete article", nil))
}
