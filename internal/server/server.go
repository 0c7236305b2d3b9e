package server

import (
	"html/template"
	"io"
	"net/http"

	"github.com/streamlinelabs/backend/internal/api/dto/common"
	"github.com/streamlinelabs/backend/internal/api/handlers"
	"github.com/streamlinelabs/backend/internal/api/middleware"
	"github.com/streamlinelabs/backend/internal/config"
	"github.com/streamlinelabs/backend/internal/repository"
	"github.com/streamlinelabs/backend/internal/service"
	"github.com/streamlinelabs/backend/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// New creates a server with all routes and middleware configured
func New(cfg *config.Config, database *gorm.DB, mailer service.Mailer) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Our request logger replaces gin's default output
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	s := &Server{
		router: router,
		cfg:    cfg,
	}
	s.registerRoutes(database, mailer)

	return s
}

func (s *Server) registerRoutes(database *gorm.DB, mailer service.Mailer) {
	contactRepo := repository.NewContactRepository(database)

	validationMiddleware := middleware.NewValidationMiddleware()

	contactHandler := handlers.NewContactHandler(contactRepo, mailer)
	messageHandler := handlers.NewMessageHandler(contactRepo)
	healthHandler := handlers.NewHealthHandler()
	homeHandler := handlers.NewHomeHandler()

	s.router.GET("/", homeHandler.Index)

	api := s.router.Group("/api")
	{
		api.GET("/health", healthHandler.Check)
		api.POST("/contact", validationMiddleware.ValidateContactRequest(), contactHandler.Submit)
		api.GET("/messages", messageHandler.List)
		api.PUT("/messages/:id/read", messageHandler.MarkRead)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.MsgEndpointNotFound))
	})
}

// Router exposes the underlying engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Handler returns the server as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}
