package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetTransitHubQueryIsNotConstructed        = errors.New("GetTransitHubQuery must be created via NewGetTransitHubQuery constructor")
	ErrGetPickupPointQueryIsNotConstructed       = errors.New("GetPickupPointQuery must be created via NewGetPickupPointQuery constructor")
	ErrGetPickupPointsByHubQueryIsNotConstructed = errors.New("GetPickupPointsByHubQuery must be created via NewGetPickupPointsByHubQuery constructor")

	ErrLookupNameIsRequired = errs.NewValueIsRequiredError("name")
)

// lookup is either an id or a name, never both.
type lookup struct {
	id   *kernel.UUID
	name string
}

func lookupByID(id kernel.UUID) (lookup, error) {
	if err := id.Validate(); err != nil {
		return lookup{}, err
	}
	return lookup{id: &id}, nil
}

func lookupByName(name string) (lookup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return lookup{}, ErrLookupNameIsRequired
	}
	return lookup{name: name}, nil
}

// ID is nil for a lookup by name.
func (l lookup) ID() *kernel.UUID {
	return l.id
}

func (l lookup) Name() string {
	return l.name
}

// GetTransitHubQuery finds a hub by id or by name.
type GetTransitHubQuery struct {
	lookup
	guard guard.ConstructorGuard
}

func NewGetTransitHubQuery(id kernel.UUID) (GetTransitHubQuery, error) {
	l, err := lookupByID(id)
	if err != nil {
		return GetTransitHubQuery{}, err
	}
	return GetTransitHubQuery{lookup: l, guard: guard.NewConstructorGuard()}, nil
}

func NewGetTransitHubByNameQuery(name string) (GetTransitHubQuery, error) {
	l, err := lookupByName(name)
	if err != nil {
		return GetTransitHubQuery{}, err
	}
	return GetTransitHubQuery{lookup: l, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTransitHubQuery) Validate() error {
	return q.guard.Validate(ErrGetTransitHubQueryIsNotConstructed)
}

// GetPickupPointQuery finds a pickup point by id or by name.
type GetPickupPointQuery struct {
	lookup
	guard guard.ConstructorGuard
}

func NewGetPickupPointQuery(id kernel.UUID) (GetPickupPointQuery, error) {
	l, err := lookupByID(id)
	if err != nil {
		return GetPickupPointQuery{}, err
	}
	return GetPickupPointQuery{lookup: l, guard: guard.NewConstructorGuard()}, nil
}

func NewGetPickupPointByNameQuery(name string) (GetPickupPointQuery, error) {
	l, err := lookupByName(name)
	if err != nil {
		return GetPickupPointQuery{}, err
	}
	return GetPickupPointQuery{lookup: l, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPickupPointQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupPointQueryIsNotConstructed)
}

// GetPickupPointsByHubQuery lists the pickup points a hub serves.
type GetPickupPointsByHubQuery struct {
	hub   kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetPickupPointsByHubQuery(hub kernel.UUID) (GetPickupPointsByHubQuery, error) {
	if err := hub.Validate(); err != nil {
		return GetPickupPointsByHubQuery{}, err
	}
	return GetPickupPointsByHubQuery{hub: hub, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPickupPointsByHubQuery) Hub() kernel.UUID {
	return q.hub
}

func (q GetPickupPointsByHubQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupPointsByHubQueryIsNotConstructed)
}

type TransitHubResponse struct {
	ID       kernel.UUID
	Name     string
	Location string
}

type PickupPointResponse struct {
	ID       kernel.UUID
	Name     string
	Location string
	Hub      kernel.UUID
}

func transitHubResponse(h *topology.TransitHub) TransitHubResponse {
	return TransitHubResponse{ID: h.ID(), Name: h.Name(), Location: h.Location()}
}

func pickupPointResponse(p *topology.PickupPoint) PickupPointResponse {
	return PickupPointResponse{ID: p.ID(), Name: p.Name(), Location: p.Location(), Hub: p.Hub()}
}
