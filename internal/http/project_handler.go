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

// ProjectHandler mantém dependências dos endpoints de projetos.
type ProjectHandler struct {
	logger   *zap.Logger
	projects repository.ProjectRepository
}

func NewProjectHandler(logger *zap.Logger, projects repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{
		logger:   logger,
		projects: projects,
	}
}

type projectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	ImageURL     string   `json:"imageUrl" binding:"required"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	IsActive     *bool    `json:"isActive"`
}

// ListProjects trata GET /api/projects. Só devolve projetos ativos.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Error("list projects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListProjectsByCategory trata GET /api/projects/category/:category.
// A comparação de categoria é exata, sensível a maiúsculas.
func (h *ProjectHandler) ListProjectsByCategory(c *gin.Context) {
	projects, err := h.projects.ListActiveByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.logger.Error("list projects by category failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID trata GET /api/projects/:id.
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	project, err := h.projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found."})
			return
		}
		h.logger.Error("fetch project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject trata POST /api/projects.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid project payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, description, category and imageUrl are required."})
		return
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:           primitive.NewObjectID(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		h.logger.Error("create project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject trata PUT /api/projects/:id.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid project payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, description, category and imageUrl are required."})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("id"), repository.ProjectUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		IsActive:     req.IsActive,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found."})
			return
		}
		h.logger.Error("update project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject trata DELETE /api/projects/:id.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found."})
			return
		}
		h.logger.Error("delete project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully."})
}
