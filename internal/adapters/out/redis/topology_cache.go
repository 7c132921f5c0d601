// Package redis caches topology reads. Hubs and pickup points never change
// once created, so entries only expire by TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"
	"logistics/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "logistics:topology:"

type hubEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type pointEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Hub      string `json:"hub"`
}

// CachedTopologyReader is a read-through cache in front of another
// ports.TopologyReader. Lookups by id are cached; name and hub listings pass
// through. A failing redis never fails a read: the source is asked instead.
type CachedTopologyReader struct {
	source ports.TopologyReader
	client goredis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedTopologyReader(
	source ports.TopologyReader,
	client goredis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedTopologyReader {
	return &CachedTopologyReader{source: source, client: client, ttl: ttl, logger: logger}
}

func (c *CachedTopologyReader) GetTransitHub(ctx context.Context, id kernel.UUID) (*topology.TransitHub, error) {
	key := keyPrefix + "hub:" + id.String()

	var entry hubEntry
	if c.lookup(ctx, key, &entry) {
		hub, err := entry.restore()
		if err == nil {
			return hub, nil
		}
		c.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
	}

	hub, err := c.source.GetTransitHub(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, hubEntry{ID: hub.ID().String(), Name: hub.Name(), Location: hub.Location()})
	return hub, nil
}

func (c *CachedTopologyReader) GetPickupPoint(ctx context.Context, id kernel.UUID) (*topology.PickupPoint, error) {
	key := keyPrefix + "point:" + id.String()

	var entry pointEntry
	if c.lookup(ctx, key, &entry) {
		point, err := entry.restore()
		if err == nil {
			return point, nil
		}
		c.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
	}

	point, err := c.source.GetPickupPoint(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, pointEntry{
		ID: point.ID().String(), Name: point.Name(), Location: point.Location(), Hub: point.Hub().String(),
	})
	return point, nil
}

func (c *CachedTopologyReader) GetTransitHubByName(ctx context.Context, name string) (*topology.TransitHub, error) {
	return c.source.GetTransitHubByName(ctx, name)
}

func (c *CachedTopologyReader) GetPickupPointByName(ctx context.Context, name string) (*topology.PickupPoint, error) {
	return c.source.GetPickupPointByName(ctx, name)
}

// GetPickupPointsByHub is not cached: new points may join a hub.
func (c *CachedTopologyReader) GetPickupPointsByHub(ctx context.Context, hub kernel.UUID) ([]*topology.PickupPoint, error) {
	return c.source.GetPickupPointsByHub(ctx, hub)
}

func (c *CachedTopologyReader) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false
	}
	if err != nil {
		c.logger.Warn("topology cache read failed", "key", key, "error", err)
		return false
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CachedTopologyReader) store(ctx context.Context, key string, entry any) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("topology cache write failed", "key", key, "error", err)
	}
}

func (e hubEntry) restore() (*topology.TransitHub, error) {
	id, err := kernel.UUIDFromString(e.ID)
	if err != nil {
		return nil, err
	}
	return topology.NewTransitHub(id, e.Name, e.Location)
}

func (e pointEntry) restore() (*topology.PickupPoint, error) {
	id, err := kernel.UUIDFromString(e.ID)
	if err != nil {
		return nil, err
	}
	hub, err := kernel.UUIDFromString(e.Hub)
	if err != nil {
		return nil, err
	}
	return topology.NewPickupPoint(id, e.Name, e.Location, hub)
}
