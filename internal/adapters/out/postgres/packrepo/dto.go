// Package packrepo provides the GORM persistence of package aggregates.
package packrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pack"

	"github.com/google/uuid"
)

// PackageDTO is a row of the packages table.
type PackageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Quantity    int        `gorm:"type:integer"`
	Weight      float64    `gorm:"type:double precision"`
	PickupFrom  uuid.UUID  `gorm:"type:uuid"`
	PickupTo    uuid.UUID  `gorm:"type:uuid"`
	TransitDate *time.Time `gorm:"type:timestamptz"`
	ArrivalDate *time.Time `gorm:"type:timestamptz"`
	Shipper     *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"type:text"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *pack.Package) PackageDTO {
	return PackageDTO{
		ID:          p.ID().Bytes(),
		Quantity:    p.Quantity(),
		Weight:      p.Weight().Float64(),
		PickupFrom:  p.Route().From().Bytes(),
		PickupTo:    p.Route().To().Bytes(),
		TransitDate: p.TransitDate(),
		ArrivalDate: p.ArrivalDate(),
		Shipper:     kernel.OptionalRaw(p.Shipper()),
		Status:      p.Status().String(),
	}
}

// ToDomain restores the aggregate from a row.
func ToDomain(dto PackageDTO) (*pack.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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
	shipper, err := kernel.OptionalUUIDFromRaw(dto.Shipper)
	if err != nil {
		return nil, err
	}
	status, err := pack.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return pack.RestorePackage(id, route, dto.Quantity, weight, shipper, status, dto.TransitDate, dto.ArrivalDate)
}
