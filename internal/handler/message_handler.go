package handler

import (
	"errors"
	"io"
	"net/http"

	"nainaland/internal/model"
	"nainaland/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles the contact form and the admin inbox
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(s service.MessageService) *MessageHandler {
	return &MessageHandler{service: s}
}

func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var req model.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid message data", err)
		return
	}

	msg, err := h.service.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		respondInternal(c, "Failed to send message", err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		respondInternal(c, "Failed to fetch messages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Message not found")
		return
	}

	msg, err := h.service.GetMessage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			respondNotFound(c, "Message not found")
			return
		}
		respondInternal(c, "Failed to fetch message", err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// MarkRead serves PUT /messages/:id/read. An empty body marks the message read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Message not found")
		return
	}

	var req model.UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, "Invalid message status", err)
		return
	}
	isRead := true
	if req.IsRead != nil {
		isRead = *req.IsRead
	}

	msg, err := h.service.SetReadStatus(c.Request.Context(), id, isRead)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			respondNotFound(c, "Message not found")
			return
		}
		respondInternal(c, "Failed to update message", err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Message not found")
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			respondNotFound(c, "Message not found")
			return
		}
		respondInternal(c, "Failed to delete message", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterMessageRoutes registers the public submit route and the admin inbox
func (h *MessageHandler) RegisterMessageRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	messages := rg.Group("/messages")
	messages.POST("", h.SubmitMessage)

	admin := messages.Group("", adminMW...)
	{
		admin.GET("", h.ListMessages)
		admin.GET("/:id", h.GetMessage)
		admin.PUT("/:id/read", h.MarkRead)
		admin.DELETE("/:id", h.DeleteMessage)
	}
}
