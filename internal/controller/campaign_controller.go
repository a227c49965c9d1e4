package controller

import (
	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/pkg/serverutils"
	"crm-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICampaignController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type campaignController struct {
	campaignService service.ICampaignService
}

func NewCampaignController(campaignService service.ICampaignService) ICampaignController {
	return &campaignController{
		campaignService: campaignService,
	}
}

func (c *campaignController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/campaign/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Post(":id/send", c.Send)
	h.Delete(":id", c.Delete)
}

func (c *campaignController) List(ctx *fiber.Ctx) error {
	q := dto.ListCampaignsQuery{
		Search: ctx.Query("search", ""),
		Status: ctx.Query("status", ""),
	}

	res, err := c.campaignService.List(ctx.Context(), &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list campaigns", res))
}

func (c *campaignController) Show(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.campaignService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show campaign", res))
}

func (c *campaignController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpsertCampaignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.campaignService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create campaign", res))
}

func (c *campaignController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpsertCampaignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.campaignService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update campaign", res))
}

func (c *campaignController) Send(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.campaignService.Send(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send campaign", res))
}

func (c *campaignController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.campaignService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete campaign", nil))
}
