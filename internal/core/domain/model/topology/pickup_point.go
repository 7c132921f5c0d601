package topology

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrHubIsRequired is returned when a pickup point is built without a hub.
	ErrHubIsRequired = errs.NewValueIsRequiredError("hub")
	// ErrPickupPointIsNotConstructed is returned when using a zero-value PickupPoint.
	ErrPickupPointIsNotConstructed = errors.New("PickupPoint must be created via NewPickupPoint constructor")
)

// PickupPoint is where customers drop off and receive shipments. It belongs to
// exactly one TransitHub for its whole lifetime.
//
// The hub reference is only checked for shape here. Whether the hub exists is
// enforced by the store and surfaces as an integrity violation on "hub".
type PickupPoint struct {
	id       kernel.UUID
	name     string
	location string
	hub      kernel.UUID
	guard    guard.ConstructorGuard
}

// NewPickupPoint validates and builds a pickup point attached to hub.
func NewPickupPoint(id kernel.UUID, name, location string, hub kernel.UUID) (*PickupPoint, error) {
	point := &PickupPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		point.setID(id),
		point.setName(name),
		point.setLocation(location),
		point.setHub(hub),
	); err != nil {
		return nil, err
	}

	return point, nil
}

func (p *PickupPoint) Validate() error {
	if p == nil {
		return ErrPickupPointIsNotConstructed
	}
	return p.guard.Validate(ErrPickupPointIsNotConstructed)
}

func (p *PickupPoint) ID() kernel.UUID {
	return p.id
}

func (p *PickupPoint) Name() string {
	return p.name
}

func (p *PickupPoint) Location() string {
	return p.location
}

// Hub returns the owning transit hub id.
func (p *PickupPoint) Hub() kernel.UUID {
	return p.hub
}

// BelongsTo reports whether the point is attached to hub.
func (p *PickupPoint) BelongsTo(hub kernel.UUID) bool {
	return p.hub.IsEqual(hub)
}

func (p *PickupPoint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PickupPoint) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *PickupPoint) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrLocationIsRequired
	}
	p.location = location
	return nil
}

func (p *PickupPoint) setHub(hub kernel.UUID) error {
	if hub.Validate() != nil {
		return ErrHubIsRequired
	}
	p.hub = hub
	return nil
}
