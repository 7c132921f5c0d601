package pack

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is a stage of the package transit pipeline. The three delivering
// stages are the successive legs origin point -> hub -> hub -> destination point.
type Status int

const (
	Unknown Status = iota
	Pending
	Delivering1
	Delivering2
	Delivering3
	Delivered
)

var statusNames = map[Status]string{
	Pending:     "pending",
	Delivering1: "delivering1",
	Delivering2: "delivering2",
	Delivering3: "delivering3",
	Delivered:   "delivered",
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

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Delivered
}

// InTransit reports whether the package has left its origin but not arrived.
func (s Status) InTransit() bool {
	return s == Delivering1 || s == Delivering2 || s == Delivering3
}

// Next returns the adjacent stage.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause("status", s, s,
			fmt.Errorf("%s is the last stage", s))
	}
	return s + 1, nil
}

// AdvanceTo validates that next is exactly the adjacent stage. Skipping a
// stage, repeating one or going back is an invalid transition.
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause("status", s, next,
			fmt.Errorf("%s is the last stage", s))
	}
	want, err := s.Next()
	if err != nil {
		return Unknown, err
	}
	if next != want {
		return Unknown, errs.NewInvalidTransitionError("status", s, next)
	}
	return next, nil
}
