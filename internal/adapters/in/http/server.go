package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CommandHandler is satisfied by every handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers lists the use cases exposed over HTTP.
type Handlers struct {
	CreateTransitHub  CommandHandler[commands.CreateTransitHubCommand]
	CreatePickupPoint CommandHandler[commands.CreatePickupPointCommand]
	RegisterAccount   CommandHandler[commands.RegisterAccountCommand]
	ChangePassword    CommandHandler[commands.ChangePasswordCommand]
	DeleteAccount     CommandHandler[commands.DeleteAccountCommand]

	CreateOrder         CommandHandler[commands.CreateOrderCommand]
	SetOrderShipper     CommandHandler[commands.SetOrderShipperCommand]
	MarkOrderDelivering CommandHandler[commands.MarkOrderDeliveringCommand]
	DeliverOrder        CommandHandler[commands.DeliverOrderCommand]
	CancelOrder         CommandHandler[commands.CancelOrderCommand]

	CreatePackage     CommandHandler[commands.CreatePackageCommand]
	SetPackageShipper CommandHandler[commands.SetPackageShipperCommand]
	AdvancePackage    CommandHandler[commands.AdvancePackageCommand]
	AddOrderToPackage CommandHandler[commands.AddOrderToPackageCommand]

	GetTransitHub        QueryHandler[queries.GetTransitHubQuery, queries.TransitHubResponse]
	GetPickupPoint       QueryHandler[queries.GetPickupPointQuery, queries.PickupPointResponse]
	GetPickupPointsByHub QueryHandler[queries.GetPickupPointsByHubQuery, []queries.PickupPointResponse]
	GetAccount           QueryHandler[queries.GetAccountQuery, queries.AccountResponse]
	GetOrders            QueryHandler[queries.GetOrdersQuery, []queries.OrderResponse]
	GetOrder             QueryHandler[queries.GetOrderQuery, queries.OrderResponse]
	GetPackages          QueryHandler[queries.GetPackagesQuery, []queries.PackageResponse]
	GetPackage           QueryHandler[queries.GetPackageQuery, queries.PackageResponse]
	GetRevenue           QueryHandler[queries.GetRevenueQuery, queries.GetRevenueQueryResponse]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
	now    func() time.Time
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger, now: time.Now}
}

// Register mounts the API under /api/v1. Every request gets a context bounded
// by timeout.
func (s *Server) Register(e *echo.Echo, timeout time.Duration) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				s.logger.LogAttrs(c.Request().Context(), slog.LevelError, "request", attrs...)
				return nil
			}
			s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{Timeout: timeout}))

	api.POST("/hubs", s.CreateTransitHub)
	api.GET("/hubs", s.FindTransitHub)
	api.GET("/hubs/:id", s.GetTransitHub)
	api.GET("/hubs/:id/pickup-points", s.GetPickupPointsByHub)

	api.POST("/pickup-points", s.CreatePickupPoint)
	api.GET("/pickup-points", s.FindPickupPoint)
	api.GET("/pickup-points/:id", s.GetPickupPoint)
	api.GET("/pickup-points/:id/revenue", s.GetRevenue)

	api.POST("/accounts", s.RegisterAccount)
	api.GET("/accounts", s.FindAccount)
	api.GET("/accounts/:id", s.GetAccount)
	api.PUT("/accounts/:id/password", s.ChangePassword)
	api.DELETE("/accounts/:id", s.DeleteAccount)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/shipper", s.SetOrderShipper)
	api.POST("/orders/:id/delivering", s.MarkOrderDelivering)
	api.POST("/orders/:id/delivered", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/packages", s.CreatePackage)
	api.GET("/packages", s.GetPackages)
	api.GET("/packages/:id", s.GetPackage)
	api.PUT("/packages/:id/shipper", s.SetPackageShipper)
	api.POST("/packages/:id/advance", s.AdvancePackage)
	api.POST("/packages/:id/orders", s.AddOrderToPackage)
}
