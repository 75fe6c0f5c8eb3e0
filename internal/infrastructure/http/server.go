package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/goldenclub/lottery-service/internal/adapter/handler/http"
	"github.com/goldenclub/lottery-service/internal/config"
	"github.com/goldenclub/lottery-service/internal/infrastructure/database"
	stripegw "github.com/goldenclub/lottery-service/internal/infrastructure/stripe"
	"github.com/goldenclub/lottery-service/internal/middleware/auth"
	"github.com/goldenclub/lottery-service/internal/usecase"
	"go.uber.org/zap"
)

// RequestValidator adapts go-playground/validator to echo
type RequestValidator struct {
	validate *validator.Validate
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &RequestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Usecases
	gateway := stripegw.NewGateway(s.config.Service.StripeSecretKey, s.logger)
	schedule := usecase.NewDrawScheduleService(s.repos.Settings, s.logger)
	checkout := usecase.NewCheckoutService(s.repos.Identity, gateway, s.logger)
	draws := usecase.NewDrawService(s.repos.Settings, s.repos.DrawConductor, s.logger)
	accounts := usecase.NewAccountService(s.repos.LotteryData, s.repos.Identity, s.logger)
	roster := usecase.NewRosterService(s.repos.LotteryData, s.repos.Identity, s.logger)

	// Handlers
	checkoutHandler := handlers.NewCheckoutHandler(checkout, s.logger, s.config.Service.ClientURL)
	drawHandler := handlers.NewDrawHandler(draws, schedule, s.logger)
	accountHandler := handlers.NewAccountHandler(accounts, s.logger)
	usersHandler := handlers.NewUsersHandler(roster, s.logger)
	webhookHandler := handlers.NewWebhookHandler(s.logger, s.config.Service.StripeWebhookSecret,
		s.repos.LotteryData, schedule, s.repos.Notifier)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.Service.Supabase.JWTSecret,
		Logger: s.logger,
	}

	v1 := s.echo.Group("/api/v1")

	// Public schedule endpoint for the website
	v1.GET("/lottery/next-draw", drawHandler.NextDrawDate)

	// Checkout requires a caller token; identity resolution is delegated to
	// the identity provider inside the usecase.
	protected := v1.Group("", auth.JWTMiddleware(jwtConfig))
	protected.POST("/lottery/checkout", checkoutHandler.CreateSubscription)

	// Admin routes additionally require the admin role
	admin := protected.Group("/admin", auth.RequireRole(s.repos.LotteryData, "admin", s.logger))
	admin.POST("/draw/trigger", drawHandler.TriggerDraw)
	admin.DELETE("/users/:id", accountHandler.DeleteUser)
	admin.GET("/users", usersHandler.ListUsers)

	// Webhook route (outside API versioning, signed by the processor)
	s.echo.POST("/webhook", webhookHandler.HandleWebhook)
}
