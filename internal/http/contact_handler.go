package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/email"
	"portfolio-api/internal/repository"
)

// ContactHandler mantém dependências dos endpoints de contacto.
type ContactHandler struct {
	logger    *zap.Logger
	contacts  repository.ContactRepository
	sender    email.Sender
	recipient string
}

func NewContactHandler(logger *zap.Logger, contacts repository.ContactRepository, sender email.Sender, recipient string) *ContactHandler {
	return &ContactHandler{
		logger:    logger,
		contacts:  contacts,
		sender:    sender,
		recipient: recipient,
	}
}

// SubmitContact trata POST /api/contact. Guarda a mensagem e depois tenta
// notificar por correio uma única vez. A persistência é a fronteira de
// sucesso: falha no envio é registada mas não altera a resposta.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, a valid email and a message are required."})
		return
	}

	message := domain.ContactMessage{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.contacts.Create(c.Request.Context(), message); err != nil {
		h.logger.Error("save contact message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	if err := h.sender.SendContactNotification(c.Request.Context(), h.recipient, message); err != nil {
		h.logger.Warn("contact notification failed", zap.Error(err), zap.String("contact_id", message.ID.Hex()))
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message received! Thank you for your message.",
		"contact": message,
	})
}

// SendSMS trata POST /api/contact/sms. Ainda sem integração de SMS.
func (h *ContactHandler) SendSMS(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "SMS functionality is not implemented yet."})
}
