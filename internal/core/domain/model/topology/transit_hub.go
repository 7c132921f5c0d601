package topology

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a hub or pickup point has a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLocationIsRequired is returned when a hub or pickup point has a blank location.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrTransitHubIsNotConstructed is returned when using a zero-value TransitHub.
	ErrTransitHubIsNotConstructed = errors.New("TransitHub must be created via NewTransitHub constructor")
)

// TransitHub is a routing waypoint that owns one or more pickup points.
type TransitHub struct {
	id       kernel.UUID
	name     string
	location string
	guard    guard.ConstructorGuard
}

// NewTransitHub validates and builds a hub. Name and location are trimmed and
// must not be empty.
//
// Example:
//
//	hub, err := topology.NewTransitHub(kernel.NewUUID(), "Hanoi Hub", "Cau Giay, Hanoi")
func NewTransitHub(id kernel.UUID, name, location string) (*TransitHub, error) {
	hub := &TransitHub{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		hub.setID(id),
		hub.setName(name),
		hub.setLocation(location),
	); err != nil {
		return nil, err
	}

	return hub, nil
}

// Validate rejects hubs that were not built by NewTransitHub.
func (h *TransitHub) Validate() error {
	if h == nil {
		return ErrTransitHubIsNotConstructed
	}
	return h.guard.Validate(ErrTransitHubIsNotConstructed)
}

func (h *TransitHub) ID() kernel.UUID {
	return h.id
}

func (h *TransitHub) Name() string {
	return h.name
}

func (h *TransitHub) Location() string {
	return h.location
}

func (h *TransitHub) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *TransitHub) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	h.name = name
	return nil
}

func (h *TransitHub) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrLocationIsRequired
	}
	h.location = location
	return nil
}
