package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ProfileHandler mantém dependências dos endpoints do perfil.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

func NewProfileHandler(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger,
		profiles: profiles,
	}
}

// GetProfile trata GET /api/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found."})
			return
		}
		h.logger.Error("fetch profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile trata POST /api/profile. O perfil é um documento único:
// cria quando não existe (201) e substitui no lugar quando já existe (200).
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req struct {
		Name              string `json:"name" binding:"required"`
		Title             string `json:"title" binding:"required"`
		Bio               string `json:"bio"`
		Email             string `json:"email" binding:"omitempty,email"`
		Phone             string `json:"phone"`
		Location          string `json:"location"`
		Linkedin          string `json:"linkedin"`
		Github            string `json:"github"`
		YearsOfExperience int    `json:"yearsOfExperience"`
		ProjectsCompleted int    `json:"projectsCompleted"`
		Certifications    int    `json:"certifications"`
		Awards            int    `json:"awards"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and title are required."})
		return
	}

	profile, created, err := h.profiles.Upsert(c.Request.Context(), domain.Profile{
		Name:              req.Name,
		Title:             req.Title,
		Bio:               req.Bio,
		Email:             req.Email,
		Phone:             req.Phone,
		Location:          req.Location,
		Linkedin:          req.Linkedin,
		Github:            req.Github,
		YearsOfExperience: req.YearsOfExperience,
		ProjectsCompleted: req.ProjectsCompleted,
		Certifications:    req.Certifications,
		Awards:            req.Awards,
	})
	if err != nil {
		h.logger.Error("save profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	if created {
		c.JSON(http.StatusCreated, profile)
		return
	}
	c.JSON(http.StatusOK, profile)
}
