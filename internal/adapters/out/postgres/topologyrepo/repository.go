package topologyrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTopologyRepository implements ports.TopologyRepository using GORM.
type GormTopologyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTopologyRepository(db *gorm.DB, tracker aggregateTracker) *GormTopologyRepository {
	return &GormTopologyRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddTransitHub fails with an integrity violation on "name" for a duplicate hub name.
func (r *GormTopologyRepository) AddTransitHub(ctx context.Context, hub *topology.TransitHub) error {
	if err := hub.Validate(); err != nil {
		return err
	}

	dto := hubFromDomain(hub)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err)
	}

	r.tracker.TrackAggregate(hub.ID(), hub)
	return nil
}

// AddPickupPoint fails with an integrity violation on "hub" when the hub is unknown.
func (r *GormTopologyRepository) AddPickupPoint(ctx context.Context, point *topology.PickupPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	dto := pointFromDomain(point)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err)
	}

	r.tracker.TrackAggregate(point.ID(), point)
	return nil
}

func (r *GormTopologyRepository) GetTransitHub(ctx context.Context, id kernel.UUID) (*topology.TransitHub, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransitHubDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "transit hub", id.String())
	}
	return hubToDomain(dto)
}

func (r *GormTopologyRepository) GetTransitHubByName(ctx context.Context, name string) (*topology.TransitHub, error) {
	var dto TransitHubDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		return nil, notFound(err, "transit hub", name)
	}
	return hubToDomain(dto)
}

func (r *GormTopologyRepository) GetPickupPoint(ctx context.Context, id kernel.UUID) (*topology.PickupPoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupPointDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "pickup point", id.String())
	}
	return pointToDomain(dto)
}

func (r *GormTopologyRepository) GetPickupPointByName(ctx context.Context, name string) (*topology.PickupPoint, error) {
	var dto PickupPointDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		return nil, notFound(err, "pickup point", name)
	}
	return pointToDomain(dto)
}

// GetPickupPointsByHub returns the points of hub ordered by name. An unknown
// hub simply has no points.
func (r *GormTopologyRepository) GetPickupPointsByHub(ctx context.Context, hub kernel.UUID) ([]*topology.PickupPoint, error) {
	if err := hub.Validate(); err != nil {
		return nil, err
	}

	var dtos []PickupPointDTO
	if err := r.db.WithContext(ctx).Where("hub = ?", hub.Bytes()).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	points := make([]*topology.PickupPoint, 0, len(dtos))
	for _, dto := range dtos {
		p, err := pointToDomain(dto)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func notFound(err error, what string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(what, key)
	}
	return err
}
