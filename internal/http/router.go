package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewRouter configura o router de Gin com middlewares e todas as rotas.
func NewRouter(
	logger *zap.Logger,
	publicBaseURL string,
	profileH *ProfileHandler,
	projectH *ProjectHandler,
	serviceH *ServiceHandler,
	technologyH *TechnologyHandler,
	contactH *ContactHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Portfolio API is running",
			"baseUrl": publicBaseURL,
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	profile := api.Group("/profile")
	profile.GET("", profileH.GetProfile)
	profile.POST("", profileH.SaveProfile)

	projects := api.Group("/projects")
	projects.GET("", projectH.ListProjects)
	projects.GET("/category/:category", projectH.ListProjectsByCategory)
	projects.GET("/:id", projectH.GetProjectByID)
	projects.POST("", projectH.CreateProject)
	projects.PUT("/:id", projectH.UpdateProject)
	projects.DELETE("/:id", projectH.DeleteProject)

	services := api.Group("/services")
	services.GET("", serviceH.ListServices)
	services.GET("/:id", serviceH.GetServiceByID)
	services.POST("", serviceH.CreateService)
	services.PUT("/:id", serviceH.UpdateService)
	services.DELETE("/:id", serviceH.DeleteService)

	technologies := api.Group("/technologies")
	technologies.GET("", technologyH.ListTechnologies)
	technologies.GET("/category/:category", technologyH.ListTechnologiesByCategory)
	technologies.GET("/:id", technologyH.GetTechnologyByID)
	technologies.POST("", technologyH.CreateTechnology)
	technologies.PUT("/:id", technologyH.UpdateTechnology)
	technologies.DELETE("/:id", technologyH.DeleteTechnology)

	contact := api.Group("/contact")
	contact.POST("", contactH.SubmitContact)
	contact.POST("/sms", contactH.SendSMS)

	return r
}

// requestIDMiddleware garante um X-Request-Id estável por pedido.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set("X-Request-Id", rid)
		c.Next()
	}
}

// zapLoggerMiddleware cria um middleware simples de logging com zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
