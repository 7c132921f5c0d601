package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"
)

// TopologyReader looks up hubs and pickup points. Unknown ids and names
// return an ObjectNotFoundError.
type TopologyReader interface {
	GetTransitHub(ctx context.Context, id kernel.UUID) (*topology.TransitHub, error)
	GetTransitHubByName(ctx context.Context, name string) (*topology.TransitHub, error)
	GetPickupPoint(ctx context.Context, id kernel.UUID) (*topology.PickupPoint, error)
	GetPickupPointByName(ctx context.Context, name string) (*topology.PickupPoint, error)
	GetPickupPointsByHub(ctx context.Context, hub kernel.UUID) ([]*topology.PickupPoint, error)
}

// TopologyRepository adds the write side used at network setup.
type TopologyRepository interface {
	TopologyReader

	AddTransitHub(ctx context.Context, hub *topology.TransitHub) error

	// AddPickupPoint fails with an integrity violation on "hub" when the hub
	// does not exist.
	AddPickupPoint(ctx context.Context, point *topology.PickupPoint) error
}
