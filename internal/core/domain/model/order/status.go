package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Delivering ──> Delivered
//	   │             │
//	   │             └───────> Cancelled
//	   ├─────────────────────> Delivered
//	   └─────────────────────> Cancelled
//
// Delivered and Cancelled are terminal. Any transition out of them fails with
// an invalid transition error.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a new order.
	Pending

	// Delivering means the order is moving, either on its own or inside a
	// package that has left its origin.
	Delivering

	// Delivered is terminal. The order carries an arrival date.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

// Persisted names of each valid status.
var statusNames = map[Status]string{
	Pending:    "pending",
	Delivering: "delivering",
	Delivered:  "delivered",
	Cancelled:  "cancelled",
}

// rank orders the non-cancelled statuses along the delivery pipeline. Status
// tracking never moves an order backwards.
var rank = map[Status]int{
	Pending:    0,
	Delivering: 1,
	Delivered:  2,
}

// ParseStatus converts a persisted name back to a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four known statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// MarkDelivering transitions Pending to Delivering.
func (s Status) MarkDelivering() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("status", s, Delivering)
	}
	return Delivering, nil
}

// Deliver transitions any non-terminal status to Delivered.
func (s Status) Deliver() (Status, error) {
	if err := s.ensureOpen(Delivered); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}

// Cancel transitions Pending or Delivering to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ensureOpen(Cancelled); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

// Track returns the status an order moves to when its package reports target.
// The second result is false when the order stays where it is: it is terminal,
// already at target, or further along than target.
func (s Status) Track(target Status) (Status, bool, error) {
	if err := s.Validate(); err != nil {
		return Unknown, false, err
	}
	targetRank, ok := rank[target]
	if !ok {
		return Unknown, false, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be tracked from a package", target),
		)
	}
	if s.IsTerminal() || targetRank <= rank[s] {
		return s, false, nil
	}
	return target, true, nil
}

func (s Status) ensureOpen(to Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewInvalidTransitionError("status", s, to)
	}
	return nil
}
