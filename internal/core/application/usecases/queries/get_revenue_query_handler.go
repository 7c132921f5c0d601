package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetRevenueQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetRevenueQueryHandler(db *gorm.DB) GetRevenueQueryHandler {
	return GetRevenueQueryHandler{db: db, now: time.Now}
}

// Handle returns 0 when nothing matches, including for an unknown pickup
// point.
func (h GetRevenueQueryHandler) Handle(ctx context.Context, query GetRevenueQuery) (GetRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	resp := GetRevenueQueryResponse{PickupPoint: query.PickupPoint(), From: query.From(), To: query.To()}
	if resp.From != nil && resp.To == nil {
		now := h.now().UTC()
		resp.To = &now
	}

	predicates := []Predicate{
		{Clause: "pickup_from = ?", Args: []any{resp.PickupPoint.Bytes()}},
		{Clause: "status = ?", Args: []any{order.Delivered.String()}},
	}
	if resp.From != nil {
		predicates = append(predicates, Predicate{Clause: "send_date >= ?", Args: []any{*resp.From}})
	}
	if resp.To != nil {
		predicates = append(predicates, Predicate{Clause: "send_date <= ?", Args: []any{*resp.To}})
	}
	cond, args := where(predicates)

	if err := h.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(charge), 0) FROM orders"+cond, args...).
		Row().
		Scan(&resp.Revenue); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	return resp, nil
}
