package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// Topology lookups go through ports.TopologyReader so that a cache can sit
// in front of the database.

type GetTransitHubQueryHandler struct {
	reader ports.TopologyReader
}

func NewGetTransitHubQueryHandler(reader ports.TopologyReader) GetTransitHubQueryHandler {
	return GetTransitHubQueryHandler{reader: reader}
}

func (h GetTransitHubQueryHandler) Handle(ctx context.Context, query GetTransitHubQuery) (TransitHubResponse, error) {
	if err := query.Validate(); err != nil {
		return TransitHubResponse{}, err
	}

	if query.id != nil {
		hub, err := h.reader.GetTransitHub(ctx, *query.id)
		if err != nil {
			return TransitHubResponse{}, err
		}
		return transitHubResponse(hub), nil
	}

	hub, err := h.reader.GetTransitHubByName(ctx, query.name)
	if err != nil {
		return TransitHubResponse{}, err
	}
	return transitHubResponse(hub), nil
}

type GetPickupPointQueryHandler struct {
	reader ports.TopologyReader
}

func NewGetPickupPointQueryHandler(reader ports.TopologyReader) GetPickupPointQueryHandler {
	return GetPickupPointQueryHandler{reader: reader}
}

func (h GetPickupPointQueryHandler) Handle(ctx context.Context, query GetPickupPointQuery) (PickupPointResponse, error) {
	if err := query.Validate(); err != nil {
		return PickupPointResponse{}, err
	}

	if query.id != nil {
		point, err := h.reader.GetPickupPoint(ctx, *query.id)
		if err != nil {
			return PickupPointResponse{}, err
		}
		return pickupPointResponse(point), nil
	}

	point, err := h.reader.GetPickupPointByName(ctx, query.name)
	if err != nil {
		return PickupPointResponse{}, err
	}
	return pickupPointResponse(point), nil
}

type GetPickupPointsByHubQueryHandler struct {
	reader ports.TopologyReader
}

func NewGetPickupPointsByHubQueryHandler(reader ports.TopologyReader) GetPickupPointsByHubQueryHandler {
	return GetPickupPointsByHubQueryHandler{reader: reader}
}

// Handle fails with ObjectNotFoundError for an unknown hub rather than
// returning an empty list.
func (h GetPickupPointsByHubQueryHandler) Handle(
	ctx context.Context,
	query GetPickupPointsByHubQuery,
) ([]PickupPointResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.reader.GetTransitHub(ctx, query.Hub()); err != nil {
		return nil, err
	}

	points, err := h.reader.GetPickupPointsByHub(ctx, query.Hub())
	if err != nil {
		return nil, err
	}

	resp := make([]PickupPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, pickupPointResponse(p))
	}
	return resp, nil
}
