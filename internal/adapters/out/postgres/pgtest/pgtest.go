// Package pgtest starts a throwaway PostgreSQL container for integration
// suites, applies the schema and seeds a small network fixture.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated database inside its container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + strings.Join(postgres.Tables, ", ") + " CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Network is a two-hub fixture. PointA and PointB belong to North, PointC and
// PointD to South.
type Network struct {
	North, South                   kernel.UUID
	PointA, PointB, PointC, PointD kernel.UUID
	Customer, Shipper              kernel.UUID
}

// SeedNetwork inserts the fixture with plain SQL.
func (d *Database) SeedNetwork(ctx context.Context) (Network, error) {
	n := Network{
		North: kernel.NewUUID(), South: kernel.NewUUID(),
		PointA: kernel.NewUUID(), PointB: kernel.NewUUID(), PointC: kernel.NewUUID(), PointD: kernel.NewUUID(),
		Customer: kernel.NewUUID(), Shipper: kernel.NewUUID(),
	}

	statements := []struct {
		sql  string
		args []any
	}{
		{"INSERT INTO transit_hubs (id, name, location) VALUES (?, 'North', 'N'), (?, 'South', 'S')",
			[]any{n.North.String(), n.South.String()}},
		{"INSERT INTO pickup_points (id, name, location, hub) VALUES (?, 'A', 'a', ?), (?, 'B', 'b', ?), (?, 'C', 'c', ?), (?, 'D', 'd', ?)",
			[]any{n.PointA.String(), n.North.String(), n.PointB.String(), n.North.String(),
				n.PointC.String(), n.South.String(), n.PointD.String(), n.South.String()}},
		{"INSERT INTO accounts (id, name, email, password_hash, role) VALUES (?, 'Customer', 'customer@example.com', 'x', 'customer'), (?, 'Shipper', 'shipper@example.com', 'x', 'shipper')",
			[]any{n.Customer.String(), n.Shipper.String()}},
	}

	db := d.DB.WithContext(ctx)
	for i, stmt := range statements {
		if err := db.Exec(stmt.sql, stmt.args...).Error; err != nil {
			return Network{}, fmt.Errorf("seed network #%d: %w", i+1, err)
		}
	}
	return n, nil
}
