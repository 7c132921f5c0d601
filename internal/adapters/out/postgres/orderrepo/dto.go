// Package orderrepo provides the GORM persistence of order aggregates: the
// row mapping and a repository bound to a unit of work.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Weight          float64    `gorm:"type:double precision"`
	Sender          uuid.UUID  `gorm:"type:uuid"`
	ReceiverNumber  string     `gorm:"type:text"`
	ReceiverAddress string     `gorm:"type:text"`
	PickupFrom      uuid.UUID  `gorm:"type:uuid"`
	PickupTo        uuid.UUID  `gorm:"type:uuid"`
	Package         *uuid.UUID `gorm:"column:package;type:uuid"`
	Charge          float64    `gorm:"type:double precision"`
	SendDate        time.Time  `gorm:"type:timestamptz"`
	ArrivalDate     *time.Time `gorm:"type:timestamptz"`
	Shipper         *uuid.UUID `gorm:"type:uuid"`
	Status          string     `gorm:"type:text"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().Bytes(),
		Weight:          o.Weight().Float64(),
		Sender:          o.Sender().Bytes(),
		ReceiverNumber:  o.ReceiverNumber(),
		ReceiverAddress: o.ReceiverAddress(),
		PickupFrom:      o.Route().From().Bytes(),
		PickupTo:        o.Route().To().Bytes(),
		Package:         kernel.OptionalRaw(o.Package()),
		Charge:          o.Charge(),
		SendDate:        o.SendDate(),
		ArrivalDate:     o.ArrivalDate(),
		Shipper:         kernel.OptionalRaw(o.Shipper()),
		Status:          o.Status().String(),
	}
}

// ToDomain restores the aggregate from a row. Query handlers reuse it so a
// read model never bypasses the aggregate invariants.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sender, err := kernel.UUIDFromBytes(dto.Sender[:])
	if err != nil {
		return nil, err
	}
	from, err := kernel.UUIDFromBytes(dto.PickupFrom[:])
	if err != nil {
		return nil, err
	}
	to, err := kernel.UUIDFromBytes(dto.PickupTo[:])
	if err != nil {
		return nil, err
	}
	route, err := kernel.NewRoute(from, to)
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.OptionalUUIDFromRaw(dto.Package)
	if err != nil {
		return nil, err
	}
	shipper, err := kernel.OptionalUUIDFromRaw(dto.Shipper)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Details{
		Sender:          sender,
		Weight:          weight,
		ReceiverNumber:  dto.ReceiverNumber,
		ReceiverAddress: dto.ReceiverAddress,
		Route:           route,
		Charge:          dto.Charge,
		SendDate:        dto.SendDate,
	}, status, packageID, shipper, dto.ArrivalDate)
}
