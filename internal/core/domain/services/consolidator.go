package services

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/pkg/errs"
)

// Consolidator is the only writer that changes an order and a package in one
// logical operation. It keeps the package aggregate (quantity, weight) in step
// with the orders linked to it and pushes package progress onto those orders.
//
// Callers must persist every aggregate it touches in a single transaction.
//
// Example usage:
//
//	c := services.NewConsolidator()
//	if err := c.Link(o, p); err != nil {
//	    return err
//	}
//	// save o and p in the same unit of work
type Consolidator struct{}

func NewConsolidator() Consolidator {
	return Consolidator{}
}

// Link consolidates o into p: the order records the package and the package
// counts the order and adds its weight.
//
// An order that already has a package fails with an integrity violation on
// "package". Both aggregates are left unchanged on any error.
func (c Consolidator) Link(o *order.Order, p *pack.Package) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if linked := o.Package(); linked != nil {
		return errs.NewIntegrityViolationErrorWithCause(
			"package",
			linked.String(),
			fmt.Errorf("order %s is already linked", o.ID()),
		)
	}

	if err := p.Include(o.Weight()); err != nil {
		return err
	}
	return o.LinkPackage(p.ID())
}

// Advance moves p to the adjacent stage next and makes every order in linked
// track it. linked must be exactly the orders whose package is p.
//
// It returns the orders whose status changed. Nothing is returned for a
// rejected transition, and p is left unchanged.
func (c Consolidator) Advance(p *pack.Package, next pack.Status, at time.Time, linked []*order.Order) ([]*order.Order, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for _, o := range linked {
		if err := c.ensureLinked(o, p); err != nil {
			return nil, err
		}
	}

	if err := p.Advance(next, at); err != nil {
		return nil, err
	}

	return c.Propagate(p, linked)
}

// Propagate applies the status p currently reports to each linked order.
// Terminal orders stay as they are.
func (c Consolidator) Propagate(p *pack.Package, linked []*order.Order) ([]*order.Order, error) {
	target := OrderStatusFor(p.Status())
	changed := make([]*order.Order, 0, len(linked))

	for _, o := range linked {
		if err := c.ensureLinked(o, p); err != nil {
			return nil, err
		}
		moved, err := o.Track(target, p.ArrivalDate())
		if err != nil {
			return nil, err
		}
		if moved {
			changed = append(changed, o)
		}
	}

	return changed, nil
}

func (c Consolidator) ensureLinked(o *order.Order, p *pack.Package) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if linked := o.Package(); linked == nil || !linked.IsEqual(p.ID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orders are invalid",
			fmt.Errorf("order %s is not linked to package %s", o.ID(), p.ID()),
		)
	}
	return nil
}

// OrderStatusFor maps package stages onto order statuses. The mapping is total
// and keeps the pipeline order: pending stays pending, every delivering leg is
// delivering, and a delivered package delivers its orders.
func OrderStatusFor(s pack.Status) order.Status {
	switch s {
	case pack.Pending:
		return order.Pending
	case pack.Delivering1, pack.Delivering2, pack.Delivering3:
		return order.Delivering
	case pack.Delivered:
		return order.Delivered
	default:
		return order.Unknown
	}
}
