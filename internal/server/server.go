package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/apperr"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/config"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/dto"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/handler"
	authmw "github.com/alamin516/genius-car-server-sllcommerz/internal/middleware"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	tokenHandler   *handler.TokenHandler
	jwtSecret      string
}

func NewServer(
	cfg *config.Config,
	catalogService service.CatalogService,
	checkoutService service.CheckoutService,
	tokenService service.TokenService,
) *Server {
	e := echo.New()

	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(checkoutService, cfg.ClientURL)
	tokenHandler := handler.NewTokenHandler(tokenService)

	s := &Server{
		echo:           e,
		catalogHandler: catalogHandler,
		orderHandler:   orderHandler,
		tokenHandler:   tokenHandler,
		jwtSecret:      cfg.JWT.Secret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "genius car server is running")
	})

	s.echo.POST("/jwt", s.tokenHandler.IssueToken)

	s.echo.GET("/services", s.catalogHandler.ListServices)
	s.echo.GET("/services/:id", s.catalogHandler.GetService)

	// -------- orders --------
	authGuard := authmw.JWTAuth(s.jwtSecret)
	s.echo.GET("/orders", s.orderHandler.ListOrders, authGuard)
	s.echo.POST("/orders", s.orderHandler.CreateOrder, authGuard)
	s.echo.DELETE("/orders/:id", s.orderHandler.DeleteOrder, authGuard)

	// -------- gateway callbacks / lookups --------
	s.echo.POST("/payment/success", s.orderHandler.PaymentSuccess)
	s.echo.POST("/payment/fail", s.orderHandler.PaymentFail)
	s.echo.POST("/payment/cancel", s.orderHandler.PaymentCancel)
	s.echo.GET("/order/by-transactionId/:id", s.orderHandler.OrderByTransactionID)
}

// httpErrorHandler renders every failure as a structured taxonomy body.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := dto.ErrorBody{
		Code:    string(apperr.CodeInternal),
		Message: "internal server error",
	}

	var appErr *apperr.Error
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPStatus()
		body.Code = string(appErr.Code)
		body.Message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		body.Code = string(codeForStatus(httpErr.Code))
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, dto.ErrorResponse{Error: body})
}

func codeForStatus(status int) apperr.Code {
	switch status {
	case http.StatusUnauthorized:
		return apperr.CodeUnauthorized
	case http.StatusForbidden:
		return apperr.CodeForbidden
	case http.StatusBadRequest:
		return apperr.CodeValidation
	case http.StatusNotFound:
		return apperr.CodeNotFound
	case http.StatusBadGateway:
		return apperr.CodeGateway
	default:
		return apperr.CodeInternal
	}
}

// Echo exposes the underlying engine for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
