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

// TechnologyHandler mantém dependências dos endpoints de tecnologias.
type TechnologyHandler struct {
	logger       *zap.Logger
	technologies repository.TechnologyRepository
}

func NewTechnologyHandler(logger *zap.Logger, technologies repository.TechnologyRepository) *TechnologyHandler {
	return &TechnologyHandler{
		logger:       logger,
		technologies: technologies,
	}
}

type technologyRequest struct {
	Name             string `json:"name" binding:"required"`
	Logo             string `json:"logo"`
	Category         string `json:"category" binding:"required,oneof=Frontend Backend Database DevOps Mobile Other"`
	ProficiencyLevel string `json:"proficiencyLevel" binding:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	IsActive         *bool  `json:"isActive"`
}

// ListTechnologies trata GET /api/technologies. Só devolve tecnologias ativas.
func (h *TechnologyHandler) ListTechnologies(c *gin.Context) {
	technologies, err := h.technologies.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Error("list technologies failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, technologies)
}

// ListTechnologiesByCategory trata GET /api/technologies/category/:category.
func (h *TechnologyHandler) ListTechnologiesByCategory(c *gin.Context) {
	technologies, err := h.technologies.ListActiveByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.logger.Error("list technologies by category failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, technologies)
}

// GetTechnologyByID trata GET /api/technologies/:id.
func (h *TechnologyHandler) GetTechnologyByID(c *gin.Context) {
	technology, err := h.technologies.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Technology not found."})
			return
		}
		h.logger.Error("fetch technology failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, technology)
}

// CreateTechnology trata POST /api/technologies. Sem nível indicado
// assume Intermediate.
func (h *TechnologyHandler) CreateTechnology(c *gin.Context) {
	var req technologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid technology payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and a valid category are required."})
		return
	}

	now := time.Now().UTC()
	technology := domain.Technology{
		ID:               primitive.NewObjectID(),
		Name:             req.Name,
		Logo:             req.Logo,
		Category:         req.Category,
		ProficiencyLevel: req.ProficiencyLevel,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if technology.ProficiencyLevel == "" {
		technology.ProficiencyLevel = domain.DefaultProficiencyLevel
	}
	if req.IsActive != nil {
		technology.IsActive = *req.IsActive
	}

	if err := h.technologies.Create(c.Request.Context(), technology); err != nil {
		h.logger.Error("create technology failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusCreated, technology)
}

// UpdateTechnology trata PUT /api/technologies/:id.
func (h *TechnologyHandler) UpdateTechnology(c *gin.Context) {
	var req technologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid technology payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and a valid category are required."})
		return
	}

	if req.ProficiencyLevel == "" {
		req.ProficiencyLevel = domain.DefaultProficiencyLevel
	}

	technology, err := h.technologies.Update(c.Request.Context(), c.Param("id"), repository.TechnologyUpdate{
		Name:             req.Name,
		Logo:             req.Logo,
		Category:         req.Category,
		ProficiencyLevel: req.ProficiencyLevel,
		IsActive:         req.IsActive,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Technology not found."})
			return
		}
		h.logger.Error("update technology failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, technology)
}

// DeleteTechnology trata DELETE /api/technologies/:id.
func (h *TechnologyHandler) DeleteTechnology(c *gin.Context) {
	if err := h.technologies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Technology not found."})
			return
		}
		h.logger.Error("delete technology failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Technology deleted successfully."})
}
