package queries

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/pkg/errs"
)

// ErrRouteIsRequired is returned by the from/to route constructors when
// neither end is given.
var ErrRouteIsRequired = errs.NewValueIsRequiredError("route")

const pointsOfHub = "SELECT id FROM pickup_points WHERE hub = ?"

// Predicate is one conjunct of a WHERE clause with its positional arguments.
type Predicate struct {
	Clause string
	Args   []any
}

// Route restricts results by where they travel. Orders accept only
// PickupRoute; packages also accept HubRoute.
type Route interface {
	Validate() error
	Predicates() []Predicate
}

type routeKind int

const (
	unsetRoute routeKind = iota
	eitherEndpoint
	fromTo
)

// PickupRoute matches on pickup points. It is either a single point that may
// be either endpoint, or an explicit from/to pair where one side may be open.
type PickupRoute struct {
	kind     routeKind
	point    kernel.UUID
	from, to *kernel.UUID
}

// ByPickupPoint matches records whose pickupFrom or pickupTo is point.
func ByPickupPoint(point kernel.UUID) (PickupRoute, error) {
	if err := point.Validate(); err != nil {
		return PickupRoute{}, err
	}
	return PickupRoute{kind: eitherEndpoint, point: point}, nil
}

// ByPickupFromTo matches on pickupFrom, pickupTo or both. At least one must
// be given.
func ByPickupFromTo(from, to *kernel.UUID) (PickupRoute, error) {
	if err := validateEnds(from, to); err != nil {
		return PickupRoute{}, err
	}
	return PickupRoute{kind: fromTo, from: from, to: to}, nil
}

func (r PickupRoute) Validate() error {
	if r.kind == unsetRoute {
		return errs.NewValueIsInvalidErrorWithCause("route", errors.New("pickup route must be built with ByPickupPoint or ByPickupFromTo"))
	}
	return nil
}

func (r PickupRoute) Predicates() []Predicate {
	switch r.kind {
	case eitherEndpoint:
		return []Predicate{{
			Clause: "(pickup_from = ? OR pickup_to = ?)",
			Args:   []any{r.point.Bytes(), r.point.Bytes()},
		}}
	case fromTo:
		var out []Predicate
		if r.from != nil {
			out = append(out, Predicate{Clause: "pickup_from = ?", Args: []any{r.from.Bytes()}})
		}
		if r.to != nil {
			out = append(out, Predicate{Clause: "pickup_to = ?", Args: []any{r.to.Bytes()}})
		}
		return out
	default:
		return nil
	}
}

// HubRoute matches on the transit hubs that serve the endpoints.
type HubRoute struct {
	kind     routeKind
	hub      kernel.UUID
	from, to *kernel.UUID
}

// ByHub matches records where either endpoint belongs to hub.
func ByHub(hub kernel.UUID) (HubRoute, error) {
	if err := hub.Validate(); err != nil {
		return HubRoute{}, err
	}
	return HubRoute{kind: eitherEndpoint, hub: hub}, nil
}

// ByHubFromTo matches the hub of pickupFrom, of pickupTo, or both.
func ByHubFromTo(from, to *kernel.UUID) (HubRoute, error) {
	if err := validateEnds(from, to); err != nil {
		return HubRoute{}, err
	}
	return HubRoute{kind: fromTo, from: from, to: to}, nil
}

func (r HubRoute) Validate() error {
	if r.kind == unsetRoute {
		return errs.NewValueIsInvalidErrorWithCause("route", errors.New("hub route must be built with ByHub or ByHubFromTo"))
	}
	return nil
}

func (r HubRoute) Predicates() []Predicate {
	switch r.kind {
	case eitherEndpoint:
		return []Predicate{{
			Clause: "(pickup_from IN (" + pointsOfHub + ") OR pickup_to IN (" + pointsOfHub + "))",
			Args:   []any{r.hub.Bytes(), r.hub.Bytes()},
		}}
	case fromTo:
		var out []Predicate
		if r.from != nil {
			out = append(out, Predicate{Clause: "pickup_from IN (" + pointsOfHub + ")", Args: []any{r.from.Bytes()}})
		}
		if r.to != nil {
			out = append(out, Predicate{Clause: "pickup_to IN (" + pointsOfHub + ")", Args: []any{r.to.Bytes()}})
		}
		return out
	default:
		return nil
	}
}

func validateEnds(from, to *kernel.UUID) error {
	if from == nil && to == nil {
		return ErrRouteIsRequired
	}
	for _, end := range []*kernel.UUID{from, to} {
		if end != nil {
			if err := end.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// OrderFilter is a sparse set of equality constraints. A nil field does not
// constrain anything.
type OrderFilter struct {
	Sender          *kernel.UUID
	Shipper         *kernel.UUID
	ReceiverNumber  *string
	ReceiverAddress *string
	Package         *kernel.UUID
	Status          *order.Status
	Route           *PickupRoute
}

func (f OrderFilter) Validate() error {
	var list []error
	for name, id := range map[string]*kernel.UUID{"sender": f.Sender, "shipper": f.Shipper, "package": f.Package} {
		if id != nil {
			if err := id.Validate(); err != nil {
				list = append(list, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	if f.Status != nil {
		list = append(list, f.Status.Validate())
	}
	if f.Route != nil {
		list = append(list, f.Route.Validate())
	}
	return errors.Join(list...)
}

// Predicates lists the conjuncts for the fields that are set, in a fixed
// order. It has no side effects.
func (f OrderFilter) Predicates() []Predicate {
	var out []Predicate
	if f.Sender != nil {
		out = append(out, Predicate{Clause: "sender = ?", Args: []any{f.Sender.Bytes()}})
	}
	if f.Shipper != nil {
		out = append(out, Predicate{Clause: "shipper = ?", Args: []any{f.Shipper.Bytes()}})
	}
	if f.ReceiverNumber != nil {
		out = append(out, Predicate{Clause: "receiver_number = ?", Args: []any{*f.ReceiverNumber}})
	}
	if f.ReceiverAddress != nil {
		out = append(out, Predicate{Clause: "receiver_address = ?", Args: []any{*f.ReceiverAddress}})
	}
	if f.Package != nil {
		out = append(out, Predicate{Clause: "package = ?", Args: []any{f.Package.Bytes()}})
	}
	if f.Status != nil {
		out = append(out, Predicate{Clause: "status = ?", Args: []any{f.Status.String()}})
	}
	if f.Route != nil {
		out = append(out, f.Route.Predicates()...)
	}
	return out
}

// PackageFilter is the package counterpart of OrderFilter. Route may be a
// PickupRoute or a HubRoute.
type PackageFilter struct {
	Shipper *kernel.UUID
	Status  *pack.Status
	Route   Route
}

func (f PackageFilter) Validate() error {
	var list []error
	if f.Shipper != nil {
		list = append(list, f.Shipper.Validate())
	}
	if f.Status != nil {
		list = append(list, f.Status.Validate())
	}
	if f.Route != nil {
		list = append(list, f.Route.Validate())
	}
	return errors.Join(list...)
}

func (f PackageFilter) Predicates() []Predicate {
	var out []Predicate
	if f.Shipper != nil {
		out = append(out, Predicate{Clause: "shipper = ?", Args: []any{f.Shipper.Bytes()}})
	}
	if f.Status != nil {
		out = append(out, Predicate{Clause: "status = ?", Args: []any{f.Status.String()}})
	}
	if f.Route != nil {
		out = append(out, f.Route.Predicates()...)
	}
	return out
}
