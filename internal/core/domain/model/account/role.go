package account

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is what an account is allowed to do on the network.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Staff
	Manager
	Shipper
)

var roleNames = map[Role]string{
	Customer: "customer",
	Staff:    "staff",
	Manager:  "manager",
	Shipper:  "shipper",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// HasWorkplace reports whether the role is bound to a pickup point or hub.
func (r Role) HasWorkplace() bool {
	return r == Staff || r == Manager
}

// ParseRole is the inverse of Role.String.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Status tells whether the account may act.
type Status int

const (
	UnknownStatus Status = iota
	Active
	Inactive
)

var statusNames = map[Status]string{
	Active:   "active",
	Inactive: "inactive",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
