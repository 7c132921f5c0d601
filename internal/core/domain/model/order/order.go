package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrSenderIsRequired          = errs.NewValueIsRequiredError("sender")
	ErrReceiverNumberIsRequired  = errs.NewValueIsRequiredError("receiverNumber")
	ErrReceiverAddressIsRequired = errs.NewValueIsRequiredError("receiverAddress")
	ErrSendDateIsRequired        = errs.NewValueIsRequiredError("sendDate")
	ErrArrivalDateIsRequired     = errs.NewValueIsRequiredError("arrivalDate")
)

// Details are the customer supplied attributes of an order. They are fixed at
// creation.
type Details struct {
	Sender          kernel.UUID
	Weight          kernel.Weight
	ReceiverNumber  string
	ReceiverAddress string
	Route           kernel.Route
	Charge          float64
	SendDate        time.Time
}

// Order is a single customer shipment request and the unit a customer tracks.
//
// Order follows these invariants:
//   - The package reference is set at most once and never cleared
//   - Arrival date is set only together with the Delivered status
//   - Delivered and Cancelled are terminal
//
// Weight and package linkage are changed only through the consolidation
// service; status also moves when the linked package advances.
type Order struct {
	id          kernel.UUID
	details     Details
	packageID   *kernel.UUID
	shipper     *kernel.UUID
	arrivalDate *time.Time
	status      Status
	guard       guard.ConstructorGuard
}

// NewOrder creates a pending, unlinked order with no shipper.
//
// Example:
//
//	weight, _ := kernel.NewWeight(2.5)
//	route, _ := kernel.NewRoute(fromPointID, toPointID)
//	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
//	    Sender:          customerID,
//	    Weight:          weight,
//	    ReceiverNumber:  "0912345678",
//	    ReceiverAddress: "5 Ly Thuong Kiet",
//	    Route:           route,
//	    Charge:          30,
//	    SendDate:        time.Now(),
//	})
func NewOrder(id kernel.UUID, details Details) (*Order, error) {
	return RestoreOrder(id, details, Pending, nil, nil, nil)
}

// RestoreOrder reconstructs an Order from persistent storage. Every invariant
// is checked again so that a corrupted row cannot produce a live aggregate.
func RestoreOrder(
	id kernel.UUID,
	details Details,
	status Status,
	packageID *kernel.UUID,
	shipper *kernel.UUID,
	arrivalDate *time.Time,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setStatus(status, arrivalDate),
		o.setPackage(packageID),
		o.SetShipper(shipper),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Sender() kernel.UUID {
	return o.details.Sender
}

func (o *Order) Weight() kernel.Weight {
	return o.details.Weight
}

func (o *Order) ReceiverNumber() string {
	return o.details.ReceiverNumber
}

func (o *Order) ReceiverAddress() string {
	return o.details.ReceiverAddress
}

func (o *Order) Route() kernel.Route {
	return o.details.Route
}

func (o *Order) Charge() float64 {
	return o.details.Charge
}

func (o *Order) SendDate() time.Time {
	return o.details.SendDate
}

// ArrivalDate is nil until the order is delivered.
func (o *Order) ArrivalDate() *time.Time {
	return o.arrivalDate
}

// Package returns the linked package id, or nil when unlinked.
func (o *Order) Package() *kernel.UUID {
	return o.packageID
}

// Shipper returns the carrying shipper id, or nil when unassigned.
func (o *Order) Shipper() *kernel.UUID {
	return o.shipper
}

func (o *Order) Status() Status {
	return o.status
}

// SetShipper reassigns the carrying shipper, or clears it when shipper is nil.
// Status is left unchanged.
func (o *Order) SetShipper(shipper *kernel.UUID) error {
	if shipper != nil {
		if err := shipper.Validate(); err != nil {
			return err
		}
		id := *shipper
		shipper = &id
	}
	o.shipper = shipper
	return nil
}

// MarkDelivering moves a pending order on its way.
func (o *Order) MarkDelivering() error {
	next, err := o.status.MarkDelivering()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Deliver marks the order delivered and stamps its arrival date.
func (o *Order) Deliver(arrivalDate time.Time) error {
	if arrivalDate.IsZero() {
		return ErrArrivalDateIsRequired
	}
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = next
	o.arrivalDate = &arrivalDate
	return nil
}

// Cancel is terminal and irreversible.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// LinkPackage records the package the order was consolidated into. It fails
// with an integrity violation on "package" when the order is already linked,
// leaving the existing link in place.
func (o *Order) LinkPackage(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	if o.packageID != nil {
		return errs.NewIntegrityViolationErrorWithCause(
			"package",
			o.packageID.String(),
			fmt.Errorf("order %s is already linked", o.id),
		)
	}
	o.packageID = &packageID
	return nil
}

// Track follows the status reported by the linked package. arrivalDate is
// only used when target is Delivered. It reports whether the order changed.
func (o *Order) Track(target Status, arrivalDate *time.Time) (bool, error) {
	next, changed, err := o.status.Track(target)
	if err != nil || !changed {
		return false, err
	}
	if next == Delivered {
		if arrivalDate == nil || arrivalDate.IsZero() {
			return false, ErrArrivalDateIsRequired
		}
		at := *arrivalDate
		o.arrivalDate = &at
	}
	o.status = next
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.ReceiverNumber = strings.TrimSpace(d.ReceiverNumber)
	d.ReceiverAddress = strings.TrimSpace(d.ReceiverAddress)

	var problems []error
	if d.Sender.Validate() != nil {
		problems = append(problems, ErrSenderIsRequired)
	}
	if d.ReceiverNumber == "" {
		problems = append(problems, ErrReceiverNumberIsRequired)
	}
	if d.ReceiverAddress == "" {
		problems = append(problems, ErrReceiverAddressIsRequired)
	}
	if err := d.Route.Validate(); err != nil {
		problems = append(problems, err)
	}
	if math.IsNaN(d.Charge) || math.IsInf(d.Charge, 0) {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("charge is invalid", fmt.Errorf("%v is not finite", d.Charge)))
	} else if d.Charge < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("charge", d.Charge, 0, math.MaxFloat64))
	}
	if d.SendDate.IsZero() {
		problems = append(problems, ErrSendDateIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	o.details = d
	return nil
}

func (o *Order) setStatus(status Status, arrivalDate *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Delivered && arrivalDate == nil {
		return ErrArrivalDateIsRequired
	}
	if status != Delivered && arrivalDate != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"arrivalDate is invalid",
			fmt.Errorf("%s order cannot have an arrival date", status),
		)
	}
	o.status = status
	o.arrivalDate = arrivalDate
	return nil
}

func (o *Order) setPackage(packageID *kernel.UUID) error {
	if packageID == nil {
		return nil
	}
	if err := packageID.Validate(); err != nil {
		return err
	}
	id := *packageID
	o.packageID = &id
	return nil
}
