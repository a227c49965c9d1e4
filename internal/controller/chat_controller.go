package controller

import (
	"errors"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/pkg/serverutils"
	"crm-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	VisitorMessages(ctx *fiber.Ctx) error
	VisitorSend(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
	AgentSend(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	// Visitor endpoints come from the public widget and carry no token.
	pub := r.Group("/chat/v1")
	pub.Post("start", c.StartSession)
	pub.Get(":id/messages", c.VisitorMessages)
	pub.Post(":id/messages", c.VisitorSend)

	h := r.Group("/agent/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("sessions", c.ListSessions)
	h.Get("sessions/:id", c.ShowSession)
	h.Get("sessions/:id/messages", c.Messages)
	h.Post("sessions/:id/messages", c.AgentSend)
	h.Post("sessions/:id/assign", c.Assign)
	h.Post("sessions/:id/end", c.End)
	h.Post("sessions/:id/read", c.MarkRead)
}

func chatError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Chat session not found"))
	case errors.Is(err, service.ErrSessionEnded):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "Chat session has ended"))
	}
	return err
}

func (c *chatController) StartSession(ctx *fiber.Ctx) error {
	var req dto.StartChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	info := entity.VisitorInfo{
		IpAddress: ctx.IP(),
		UserAgent: ctx.Get("User-Agent"),
		PageURL:   req.PageURL,
		Referrer:  req.Referrer,
	}

	res, err := c.chatService.StartSession(ctx.Context(), &req, info)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start chat session", res))
}

func (c *chatController) VisitorMessages(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatService.GetMessages(ctx.Context(), id)
	if err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat messages", res))
}

func (c *chatController) VisitorSend(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendVisitorMessage(ctx.Context(), id, &req)
	if err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat message", res))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	q := dto.ListSessionsQuery{
		Search: ctx.Query("search", ""),
		Status: ctx.Query("status", ""),
	}

	res, err := c.chatService.ListSessions(ctx.Context(), &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat sessions", res))
}

func (c *chatController) ShowSession(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatService.ShowSession(ctx.Context(), id)
	if err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat session", res))
}

func (c *chatController) Messages(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatService.GetMessages(ctx.Context(), id)
	if err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat messages", res))
}

func (c *chatController) AgentSend(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendAgentMessage(ctx.Context(), id, userId, &req)
	if err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat message", res))
}

func (c *chatController) Assign(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatService.AssignToMe(ctx.Context(), id, userId)
	if err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success assign chat session", res))
}

func (c *chatController) End(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatService.EndSession(ctx.Context(), id)
	if err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success end chat session", res))
}

func (c *chatController) MarkRead(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.chatService.MarkRead(ctx.Context(), id); err != nil {
		return chatError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark messages read", nil))
}
