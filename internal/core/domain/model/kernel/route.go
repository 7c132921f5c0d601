package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// Route is the origin and destination pickup points of an order or package.
// A zero-length route (from == to) is not valid cargo and is rejected.
type Route struct {
	from UUID
	to   UUID
}

func NewRoute(from, to UUID) (Route, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return Route{}, err
	}
	if from.IsEqual(to) {
		return Route{}, errs.NewValueIsInvalidErrorWithCause(
			"pickupTo",
			fmt.Errorf("%s is the same pickup point as pickupFrom", to),
		)
	}
	return Route{from: from, to: to}, nil
}

func (r Route) From() UUID {
	return r.from
}

func (r Route) To() UUID {
	return r.to
}

// Touches reports whether point is either endpoint.
func (r Route) Touches(point UUID) bool {
	return r.from.IsEqual(point) || r.to.IsEqual(point)
}

// Validate rejects the zero value.
func (r Route) Validate() error {
	return errors.Join(r.from.Validate(), r.to.Validate())
}
