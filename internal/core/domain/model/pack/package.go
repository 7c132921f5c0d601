package pack

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not created through
	// NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	ErrTransitDateIsRequired = errs.NewValueIsRequiredError("transitDate")
	ErrArrivalDateIsRequired = errs.NewValueIsRequiredError("arrivalDate")
	ErrDateIsRequired        = errs.NewValueIsRequiredError("date")
)

// Package is a consolidated carrier unit.
//
// The aggregate invariant (quantity and weight equal the count and weight sum
// of the orders linked to it) is maintained together with those orders by the
// consolidation service; Include is the only path that changes either field.
type Package struct {
	id          kernel.UUID
	route       kernel.Route
	quantity    int
	weight      kernel.Weight
	shipper     *kernel.UUID
	transitDate *time.Time
	arrivalDate *time.Time
	status      Status
	guard       guard.ConstructorGuard
}

// NewPackage creates an empty pending package. shipper may be nil.
func NewPackage(id kernel.UUID, route kernel.Route, shipper *kernel.UUID) (*Package, error) {
	return RestorePackage(id, route, 0, kernel.ZeroWeight(), shipper, Pending, nil, nil)
}

// RestorePackage reconstructs a Package from persistent storage.
//
// Business Rules:
//   - quantity is never negative
//   - an empty package weighs nothing
//   - the transit date is present once the package left pending
//   - the arrival date is present exactly when the package is delivered
func RestorePackage(
	id kernel.UUID,
	route kernel.Route,
	quantity int,
	weight kernel.Weight,
	shipper *kernel.UUID,
	status Status,
	transitDate *time.Time,
	arrivalDate *time.Time,
) (*Package, error) {
	p := &Package{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setRoute(route),
		p.setAggregate(quantity, weight),
		p.SetShipper(shipper),
		p.setStatus(status, transitDate, arrivalDate),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) Route() kernel.Route {
	return p.route
}

// Quantity is the number of linked orders.
func (p *Package) Quantity() int {
	return p.quantity
}

// Weight is the sum of linked order weights.
func (p *Package) Weight() kernel.Weight {
	return p.weight
}

func (p *Package) Shipper() *kernel.UUID {
	return p.shipper
}

func (p *Package) TransitDate() *time.Time {
	return p.transitDate
}

func (p *Package) ArrivalDate() *time.Time {
	return p.arrivalDate
}

func (p *Package) Status() Status {
	return p.status
}

// SetShipper reassigns or clears the carrying shipper.
func (p *Package) SetShipper(shipper *kernel.UUID) error {
	if shipper != nil {
		if err := shipper.Validate(); err != nil {
			return err
		}
		id := *shipper
		shipper = &id
	}
	p.shipper = shipper
	return nil
}

// Include folds one more order of the given weight into the aggregate. The
// package is left unchanged on error.
func (p *Package) Include(orderWeight kernel.Weight) error {
	total, err := p.weight.Add(orderWeight)
	if err != nil {
		return err
	}
	p.quantity++
	p.weight = total
	return nil
}

// Advance moves the package to the adjacent stage next, stamping the transit
// date on delivering1 and the arrival date on delivered.
func (p *Package) Advance(next Status, at time.Time) error {
	if at.IsZero() {
		return ErrDateIsRequired
	}
	status, err := p.status.AdvanceTo(next)
	if err != nil {
		return err
	}

	switch status {
	case Delivering1:
		p.transitDate = &at
	case Delivered:
		p.arrivalDate = &at
	}
	p.status = status
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	p.route = route
	return nil
}

func (p *Package) setAggregate(quantity int, weight kernel.Weight) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	if quantity == 0 && weight.Float64() != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("empty package cannot weigh %s", weight),
		)
	}
	p.quantity = quantity
	p.weight = weight
	return nil
}

func (p *Package) setStatus(status Status, transitDate, arrivalDate *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Pending && transitDate != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"transitDate is invalid",
			fmt.Errorf("%s package cannot have a transit date", status),
		)
	}
	if status != Pending && transitDate == nil {
		return ErrTransitDateIsRequired
	}
	if status == Delivered && arrivalDate == nil {
		return ErrArrivalDateIsRequired
	}
	if status != Delivered && arrivalDate != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"arrivalDate is invalid",
			fmt.Errorf("%s package cannot have an arrival date", status),
		)
	}
	p.status = status
	p.transitDate = transitDate
	p.arrivalDate = arrivalDate
	return nil
}
