package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ServiceHandler mantém dependências dos endpoints de serviços.
type ServiceHandler struct {
	logger   *zap.Logger
	services repository.ServiceRepository
}

func NewServiceHandler(logger *zap.Logger, services repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{
		logger:   logger,
		services: services,
	}
}

type serviceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       string `json:"price"`
	Icon        string `json:"icon"`
	Link        string `json:"link"`
	IsActive    *bool  `json:"isActive"`
}

// ListServices trata GET /api/services. Só devolve serviços ativos.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.services.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Error("list services failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID trata GET /api/services/:id.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	service, err := h.services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found."})
			return
		}
		h.logger.Error("fetch service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService trata POST /api/services. Preço, ícone e link têm valores
// por omissão herdados do site.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required."})
		return
	}

	now := time.Now().UTC()
	service := domain.Service{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Icon:        req.Icon,
		Link:        req.Link,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if service.Price == "" {
		service.Price = domain.DefaultServicePrice
	}
	if service.Icon == "" {
		service.Icon = domain.DefaultServiceIcon
	}
	if service.Link == "" {
		service.Link = domain.DefaultServiceLink
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.services.Create(c.Request.Context(), service); err != nil {
		h.logger.Error("create service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateService trata PUT /api/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required."})
		return
	}

	service, err := h.services.Update(c.Request.Context(), c.Param("id"), repository.ServiceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Icon:        req.Icon,
		Link:        req.Link,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found."})
			return
		}
		h.logger.Error("update service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService trata DELETE /api/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found."})
			return
		}
		h.logger.Error("delete service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully."})
}
