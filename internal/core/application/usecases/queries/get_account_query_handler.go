package queries

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAccountQueryHandler struct {
	db *gorm.DB
}

func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	const columns = "SELECT id, name, email, phone, role, status, pickup_point, transit_hub FROM accounts"

	var (
		tx  *gorm.DB
		key any
	)
	if query.id != nil {
		tx = h.db.WithContext(ctx).Raw(columns+" WHERE id = ?", query.id.Bytes())
		key = *query.id
	} else {
		tx = h.db.WithContext(ctx).Raw(columns+" WHERE email = ?", query.email)
		key = query.email
	}

	rows, err := tx.Rows()
	if err != nil {
		return AccountResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AccountResponse{}, err
		}
		return AccountResponse{}, errs.NewObjectNotFoundError("account", key)
	}

	var (
		resp         AccountResponse
		id           uuid.UUID
		point, hub   *uuid.UUID
		role, status string
	)
	if err = rows.Scan(&id, &resp.Name, &resp.Email, &resp.Phone, &role, &status, &point, &hub); err != nil {
		return AccountResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AccountResponse{}, err
	}
	if resp.Role, err = account.ParseRole(role); err != nil {
		return AccountResponse{}, err
	}
	if resp.Status, err = account.ParseStatus(status); err != nil {
		return AccountResponse{}, err
	}
	if resp.PickupPoint, err = kernel.OptionalUUIDFromRaw(point); err != nil {
		return AccountResponse{}, err
	}
	if resp.TransitHub, err = kernel.OptionalUUIDFromRaw(hub); err != nil {
		return AccountResponse{}, err
	}
	return resp, nil
}
