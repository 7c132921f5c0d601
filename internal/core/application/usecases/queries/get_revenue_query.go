package queries

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetRevenueQueryIsNotConstructed = errors.New("GetRevenueQuery must be created via NewGetRevenueQuery constructor")

// GetRevenueQuery sums the charges of delivered orders sent from a pickup
// point, optionally within an inclusive send date range.
type GetRevenueQuery struct {
	pickupPoint kernel.UUID
	from, to    *time.Time
	guard       guard.ConstructorGuard
}

// NewGetRevenueQuery builds the query. from and to may each be nil. When only
// from is given the range ends at the time the query is handled.
func NewGetRevenueQuery(pickupPoint kernel.UUID, from, to *time.Time) (GetRevenueQuery, error) {
	if err := pickupPoint.Validate(); err != nil {
		return GetRevenueQuery{}, err
	}
	if from != nil && to != nil && from.After(*to) {
		return GetRevenueQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"range is invalid",
			fmt.Errorf("start %s is after end %s", from.Format(time.RFC3339), to.Format(time.RFC3339)),
		)
	}
	return GetRevenueQuery{pickupPoint: pickupPoint, from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRevenueQuery) PickupPoint() kernel.UUID {
	return q.pickupPoint
}

func (q GetRevenueQuery) From() *time.Time {
	return q.from
}

func (q GetRevenueQuery) To() *time.Time {
	return q.to
}

func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

// GetRevenueQueryResponse echoes the effective range next to the total.
type GetRevenueQueryResponse struct {
	PickupPoint kernel.UUID
	From        *time.Time
	To          *time.Time
	Revenue     float64
}
