package server

import (
	"digital-cards/internal/handler"
	"digital-cards/internal/repository"
	"digital-cards/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
	profileHandler *handler.ProfileHandler
}

func NewServer(paymentService service.PaymentService, profileRepo repository.ProfileRepository) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	paymentHandler := handler.NewPaymentHandler(paymentService)
	profileHandler := handler.NewProfileHandler(profileRepo)

	s := &Server{
		echo:           e,
		paymentHandler: paymentHandler,
		profileHandler: profileHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/plans", s.paymentHandler.Plans)

	// -------- payments --------
	payment := api.Group("/payment")
	payment.POST("/initialize", s.paymentHandler.Initialize)
	payment.POST("/verify", s.paymentHandler.Verify)

	// -------- published cards --------
	api.GET("/search", s.profileHandler.Search)
	api.GET("/cards/:userId/vcard", s.profileHandler.VCard)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
