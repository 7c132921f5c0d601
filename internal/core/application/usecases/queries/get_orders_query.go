package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New("GetOrdersQuery must be created via NewGetOrdersQuery constructor")
	ErrGetOrderQueryIsNotConstructed  = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")
)

// GetOrdersQuery lists orders matching a filter, newest send date first.
//
// Example:
//
//	status := order.Delivering
//	route, _ := queries.ByPickupPoint(pointID)
//	query, err := queries.NewGetOrdersQuery(queries.OrderFilter{Status: &status, Route: &route})
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	filter OrderFilter
	guard  guard.ConstructorGuard
}

// NewGetOrdersQuery accepts an empty filter, which matches every order.
func NewGetOrdersQuery(filter OrderFilter) (GetOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Filter() OrderFilter {
	return q.filter
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrderQuery fetches one order by id.
type GetOrderQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) ID() kernel.UUID {
	return q.id
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
