// Package topologyrepo persists transit hubs and pickup points.
package topologyrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"

	"github.com/google/uuid"
)

type TransitHubDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:text"`
	Location string    `gorm:"type:text"`
}

func (TransitHubDTO) TableName() string {
	return "transit_hubs"
}

type PickupPointDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:text"`
	Location string    `gorm:"type:text"`
	Hub      uuid.UUID `gorm:"type:uuid"`
}

func (PickupPointDTO) TableName() string {
	return "pickup_points"
}

func hubFromDomain(h *topology.TransitHub) TransitHubDTO {
	return TransitHubDTO{ID: h.ID().Bytes(), Name: h.Name(), Location: h.Location()}
}

func hubToDomain(dto TransitHubDTO) (*topology.TransitHub, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return topology.NewTransitHub(id, dto.Name, dto.Location)
}

func pointFromDomain(p *topology.PickupPoint) PickupPointDTO {
	return PickupPointDTO{ID: p.ID().Bytes(), Name: p.Name(), Location: p.Location(), Hub: p.Hub().Bytes()}
}

func pointToDomain(dto PickupPointDTO) (*topology.PickupPoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hub, err := kernel.UUIDFromBytes(dto.Hub[:])
	if err != nil {
		return nil, err
	}
	return topology.NewPickupPoint(id, dto.Name, dto.Location, hub)
}
