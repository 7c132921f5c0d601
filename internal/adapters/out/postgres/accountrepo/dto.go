// Package accountrepo persists accounts.
package accountrepo

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is a row of the accounts table.
type AccountDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:text"`
	Email        string     `gorm:"type:text"`
	PasswordHash string     `gorm:"type:text"`
	Phone        string     `gorm:"type:text"`
	Role         string     `gorm:"type:text"`
	Status       string     `gorm:"type:text"`
	PickupPoint  *uuid.UUID `gorm:"type:uuid"`
	TransitHub   *uuid.UUID `gorm:"type:uuid"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Name:         a.Name(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		Phone:        a.Phone(),
		Role:         a.Role().String(),
		Status:       a.Status().String(),
		PickupPoint:  kernel.OptionalRaw(a.PickupPoint()),
		TransitHub:   kernel.OptionalRaw(a.TransitHub()),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	status, err := account.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	point, err := kernel.OptionalUUIDFromRaw(dto.PickupPoint)
	if err != nil {
		return nil, err
	}
	hub, err := kernel.OptionalUUIDFromRaw(dto.TransitHub)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Name, dto.Email, dto.PasswordHash, dto.Phone, role, status,
		account.Workplace{PickupPoint: point, TransitHub: hub})
}
