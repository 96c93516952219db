package controller

import (
	"ai-mindsupport-be/internal/dto"
	"ai-mindsupport-be/internal/pkg/logger"
	"ai-mindsupport-be/internal/pkg/serverutils"
	"ai-mindsupport-be/internal/service"
	internalWS "ai-mindsupport-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewChatController(service service.IChatService, hub *internalWS.Hub, log logger.ILogger) IChatController {
	return &chatController{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")

	// Websocket handshakes cannot carry an Authorization header from
	// browsers, so the ws route authenticates via ?token= instead.
	h.Get("/ws", serverutils.JwtFromQueryToken, c.ServeWs)

	h.Use(serverutils.JwtMiddleware)
	h.Post("/sessions", c.CreateSession)
	h.Get("/sessions", c.GetAllSessions)
	h.Get("/sessions/:id/history", c.GetChatHistory)
	h.Post("/messages", c.SendMessage)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) GetAllSessions(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAllSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all sessions", res))
}

func (c *chatController) GetChatHistory(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	sessionId, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	res, err := c.service.GetChatHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.AcceptedResponse("Message queued", res))
}

func (c *chatController) ServeWs(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.ErrUnauthorized
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("ChatController", "Starting WebSocket session", map[string]interface{}{"user_id": userId})
			internalWS.ServeWs(c.hub, conn, userId)
			c.logger.Info("ChatController", "WebSocket session ended", map[string]interface{}{"user_id": userId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
