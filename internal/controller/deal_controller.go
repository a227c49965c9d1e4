package controller

import (
	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/pkg/serverutils"
	"crm-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDealController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Pipeline(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ChangeStage(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type dealController struct {
	dealService service.IDealService
}

func NewDealController(dealService service.IDealService) IDealController {
	return &dealController{
		dealService: dealService,
	}
}

func (c *dealController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/deal/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get("pipeline", c.Pipeline)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id/stage", c.ChangeStage)
	h.Delete(":id", c.Delete)
}

func (c *dealController) List(ctx *fiber.Ctx) error {
	q := dto.ListDealsQuery{
		Search: ctx.Query("search", ""),
		Stage:  ctx.Query("stage", ""),
	}

	res, err := c.dealService.List(ctx.Context(), &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list deals", res))
}

func (c *dealController) Pipeline(ctx *fiber.Ctx) error {
	res, err := c.dealService.Pipeline(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show pipeline", res))
}

func (c *dealController) Show(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.dealService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show deal", res))
}

func (c *dealController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpsertDealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dealService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create deal", res))
}

func (c *dealController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpsertDealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dealService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update deal", res))
}

func (c *dealController) ChangeStage(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.ChangeDealStageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dealService.ChangeStage(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success change deal stage", res))
}

func (c *dealController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.dealService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete deal", nil))
}
