package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/service"
)

// MessageHandler serves the trainer/student chat endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// --- Request/Response Structs ---

type SendMessageRequest struct {
	ReceiverID string             `json:"receiverId" binding:"required"`
	Content    string             `json:"content"`
	Type       domain.MessageType `json:"type" binding:"omitempty,oneof=text image video audio"`
	MediaURL   string             `json:"mediaUrl"`
}

// --- Handler Methods ---

// GetConversation returns the thread between the caller and another user.
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	messages := h.messageService.Conversation(userID, c.Param("userId"))
	if messages == nil {
		messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessage appends a message to a thread.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	message, err := h.messageService.Send(domain.Message{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Type:       req.Type,
		MediaURL:   req.MediaURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, message)
}

// MarkRead flags a message as read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messageService.MarkRead(c.Param("id")); err != nil {
		abortWithError(c, http.StatusNotFound, "Message not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

// PresignAttachmentUpload returns a presigned PUT URL for a message
// attachment. 503 when no media bucket is configured.
func (h *MessageHandler) PresignAttachmentUpload(c *gin.Context) {
	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	url, err := h.messageService.AttachmentUploadURL(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrMediaDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, "Media storage is not configured")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to presign media URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": url})
}

// PresignAttachmentView returns a presigned GET URL for an attachment.
func (h *MessageHandler) PresignAttachmentView(c *gin.Context) {
	url, err := h.messageService.AttachmentViewURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMediaDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, "Media storage is not configured")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to presign media URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewUrl": url})
}
