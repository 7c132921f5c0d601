package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateTransitHub handles POST /api/v1/hubs.
func (s *Server) CreateTransitHub(ctx echo.Context) error {
	var body NewTransitHub
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateTransitHubCommand(id, body.Name, body.Location)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.CreateTransitHub.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// GetTransitHub handles GET /api/v1/hubs/:id.
func (s *Server) GetTransitHub(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetTransitHubQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondTransitHub(ctx, query)
}

// FindTransitHub handles GET /api/v1/hubs?name=.
func (s *Server) FindTransitHub(ctx echo.Context) error {
	query, err := queries.NewGetTransitHubByNameQuery(ctx.QueryParam("name"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondTransitHub(ctx, query)
}

func (s *Server) respondTransitHub(ctx echo.Context, query queries.GetTransitHubQuery) error {
	hub, err := s.h.GetTransitHub.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTransitHub(hub))
}

// GetPickupPointsByHub handles GET /api/v1/hubs/:id/pickup-points.
func (s *Server) GetPickupPointsByHub(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetPickupPointsByHubQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	points, err := s.h.GetPickupPointsByHub.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]PickupPoint, len(points))
	for i, p := range points {
		response[i] = toPickupPoint(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePickupPoint handles POST /api/v1/pickup-points.
func (s *Server) CreatePickupPoint(ctx echo.Context) error {
	var body NewPickupPoint
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hub, err := fromRaw(body.Hub)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePickupPointCommand(id, body.Name, body.Location, hub)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.CreatePickupPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// GetPickupPoint handles GET /api/v1/pickup-points/:id.
func (s *Server) GetPickupPoint(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetPickupPointQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondPickupPoint(ctx, query)
}

// FindPickupPoint handles GET /api/v1/pickup-points?name=.
func (s *Server) FindPickupPoint(ctx echo.Context) error {
	query, err := queries.NewGetPickupPointByNameQuery(ctx.QueryParam("name"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondPickupPoint(ctx, query)
}

func (s *Server) respondPickupPoint(ctx echo.Context, query queries.GetPickupPointQuery) error {
	point, err := s.h.GetPickupPoint.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPickupPoint(point))
}

// GetRevenue handles GET /api/v1/pickup-points/:id/revenue?from=&to=.
func (s *Server) GetRevenue(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	from, err := queryTime(ctx, "from", false)
	if err != nil {
		return s.writeError(ctx, err)
	}
	to, err := queryTime(ctx, "to", true)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetRevenueQuery(id, from, to)
	if err != nil {
		return s.writeError(ctx, err)
	}
	resp, err := s.h.GetRevenue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Revenue{
		PickupPoint: resp.PickupPoint.Bytes(),
		From:        resp.From,
		To:          resp.To,
		Revenue:     resp.Revenue,
	})
}
