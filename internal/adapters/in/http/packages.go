package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errMixedRoute = errs.NewValueIsInvalidError("route: pickupPoint, pickupFrom/pickupTo, hub and hubFrom/hubTo are exclusive")

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var body NewPackage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	from, err := fromRaw(body.PickupFrom)
	if err != nil {
		return s.writeError(ctx, err)
	}
	to, err := fromRaw(body.PickupTo)
	if err != nil {
		return s.writeError(ctx, err)
	}
	shipper, err := fromOptionalRaw(body.Shipper)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(id, from, to, shipper)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.CreatePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// GetPackages handles GET /api/v1/packages.
func (s *Server) GetPackages(ctx echo.Context) error {
	var (
		filter queries.PackageFilter
		err    error
	)
	if filter.Shipper, err = queryID(ctx, "shipper"); err != nil {
		return s.writeError(ctx, err)
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := pack.ParseStatus(raw)
		if parseErr != nil {
			return s.writeError(ctx, parseErr)
		}
		filter.Status = &status
	}
	if filter.Route, err = packageRoute(ctx); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetPackagesQuery(filter)
	if err != nil {
		return s.writeError(ctx, err)
	}
	packages, err := s.h.GetPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Package, len(packages))
	for i, p := range packages {
		response[i] = toPackage(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPackage handles GET /api/v1/packages/:id.
func (s *Server) GetPackage(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.h.GetPackage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPackage(p))
}

// SetPackageShipper handles PUT /api/v1/packages/:id/shipper.
func (s *Server) SetPackageShipper(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body ShipperAssignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	shipper, err := fromOptionalRaw(body.Shipper)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSetPackageShipperCommand(id, shipper)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.SetPackageShipper.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvancePackage handles POST /api/v1/packages/:id/advance. Linked orders
// follow in the same transaction.
func (s *Server) AdvancePackage(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body Advance
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	next, err := pack.ParseStatus(body.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}
	at := s.now().UTC()
	if body.At != nil {
		at = *body.At
	}

	cmd, err := commands.NewAdvancePackageCommand(id, next, at)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.AdvancePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderToPackage handles POST /api/v1/packages/:id/orders.
func (s *Server) AddOrderToPackage(ctx echo.Context) error {
	packageID, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body Consolidation
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	orderID, err := fromRaw(body.OrderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddOrderToPackageCommand(orderID, packageID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.AddOrderToPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// pickupRoute reads pickupPoint or pickupFrom/pickupTo. It returns nil when
// none is given.
func pickupRoute(ctx echo.Context) (*queries.PickupRoute, error) {
	point, err := queryID(ctx, "pickupPoint")
	if err != nil {
		return nil, err
	}
	from, err := queryID(ctx, "pickupFrom")
	if err != nil {
		return nil, err
	}
	to, err := queryID(ctx, "pickupTo")
	if err != nil {
		return nil, err
	}

	var route queries.PickupRoute
	switch {
	case point != nil && (from != nil || to != nil):
		return nil, errMixedRoute
	case point != nil:
		route, err = queries.ByPickupPoint(*point)
	case from != nil || to != nil:
		route, err = queries.ByPickupFromTo(from, to)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// packageRoute also accepts hub and hubFrom/hubTo.
func packageRoute(ctx echo.Context) (queries.Route, error) {
	byPoint, err := pickupRoute(ctx)
	if err != nil {
		return nil, err
	}
	hub, err := queryID(ctx, "hub")
	if err != nil {
		return nil, err
	}
	hubFrom, err := queryID(ctx, "hubFrom")
	if err != nil {
		return nil, err
	}
	hubTo, err := queryID(ctx, "hubTo")
	if err != nil {
		return nil, err
	}

	byHub := hub != nil || hubFrom != nil || hubTo != nil
	switch {
	case byHub && byPoint != nil, hub != nil && (hubFrom != nil || hubTo != nil):
		return nil, errMixedRoute
	case hub != nil:
		return queries.ByHub(*hub)
	case byHub:
		return queries.ByHubFromTo(hubFrom, hubTo)
	case byPoint != nil:
		return *byPoint, nil
	default:
		return nil, nil
	}
}
