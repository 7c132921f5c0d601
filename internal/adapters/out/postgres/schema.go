package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Constraint names are spelled out so that pgerr can recover the offending
// field from a violation.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS transit_hubs (
		id       uuid PRIMARY KEY,
		name     text NOT NULL,
		location text NOT NULL,
		CONSTRAINT transit_hubs_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS pickup_points (
		id       uuid PRIMARY KEY,
		name     text NOT NULL,
		location text NOT NULL,
		hub      uuid NOT NULL,
		CONSTRAINT pickup_points_name_key UNIQUE (name),
		CONSTRAINT pickup_points_hub_fkey FOREIGN KEY (hub) REFERENCES transit_hubs (id)
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id            uuid PRIMARY KEY,
		name          text NOT NULL,
		email         text NOT NULL,
		password_hash text NOT NULL,
		phone         text NOT NULL DEFAULT '',
		role          text NOT NULL,
		status        text NOT NULL DEFAULT 'active',
		pickup_point  uuid,
		transit_hub   uuid,
		CONSTRAINT accounts_email_key UNIQUE (email),
		CONSTRAINT accounts_pickup_point_fkey FOREIGN KEY (pickup_point) REFERENCES pickup_points (id),
		CONSTRAINT accounts_transit_hub_fkey FOREIGN KEY (transit_hub) REFERENCES transit_hubs (id),
		CONSTRAINT accounts_workplace_check CHECK (
			(role IN ('staff', 'manager') AND num_nonnulls(pickup_point, transit_hub) = 1)
			OR (role NOT IN ('staff', 'manager') AND pickup_point IS NULL AND transit_hub IS NULL)
		)
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id           uuid PRIMARY KEY,
		quantity     integer NOT NULL DEFAULT 0,
		weight       double precision NOT NULL DEFAULT 0,
		pickup_from  uuid NOT NULL,
		pickup_to    uuid NOT NULL,
		transit_date timestamptz,
		arrival_date timestamptz,
		shipper      uuid,
		status       text NOT NULL DEFAULT 'pending',
		CONSTRAINT packages_pickup_from_fkey FOREIGN KEY (pickup_from) REFERENCES pickup_points (id),
		CONSTRAINT packages_pickup_to_fkey FOREIGN KEY (pickup_to) REFERENCES pickup_points (id),
		CONSTRAINT packages_shipper_fkey FOREIGN KEY (shipper) REFERENCES accounts (id),
		CONSTRAINT packages_quantity_check CHECK (quantity >= 0),
		CONSTRAINT packages_weight_check CHECK (weight >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id               uuid PRIMARY KEY,
		weight           double precision NOT NULL DEFAULT 0,
		sender           uuid NOT NULL,
		receiver_number  text NOT NULL,
		receiver_address text NOT NULL,
		pickup_from      uuid NOT NULL,
		pickup_to        uuid NOT NULL,
		package          uuid,
		charge           double precision NOT NULL DEFAULT 0,
		send_date        timestamptz NOT NULL,
		arrival_date     timestamptz,
		shipper          uuid,
		status           text NOT NULL DEFAULT 'pending',
		CONSTRAINT orders_sender_fkey FOREIGN KEY (sender) REFERENCES accounts (id),
		CONSTRAINT orders_pickup_from_fkey FOREIGN KEY (pickup_from) REFERENCES pickup_points (id),
		CONSTRAINT orders_pickup_to_fkey FOREIGN KEY (pickup_to) REFERENCES pickup_points (id),
		CONSTRAINT orders_package_fkey FOREIGN KEY (package) REFERENCES packages (id),
		CONSTRAINT orders_shipper_fkey FOREIGN KEY (shipper) REFERENCES accounts (id),
		CONSTRAINT orders_weight_check CHECK (weight >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_messages (
		id             uuid PRIMARY KEY,
		aggregate_type text NOT NULL,
		aggregate_id   uuid NOT NULL,
		event_type     text NOT NULL,
		payload        jsonb NOT NULL,
		occurred_at    timestamptz NOT NULL,
		published_at   timestamptz
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pickup_points_hub ON pickup_points (hub)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_pickup_from ON orders (pickup_from)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_pickup_to ON orders (pickup_to)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_package ON orders (package)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_send_date ON orders (send_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_pickup_from ON packages (pickup_from)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_pickup_to ON packages (pickup_to)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_messages_unpublished ON outbox_messages (occurred_at) WHERE published_at IS NULL`,
}

// Tables lists every table created by Migrate, children first, so tests can
// truncate them in one statement.
var Tables = []string{"outbox_messages", "orders", "packages", "accounts", "pickup_points", "transit_hubs"}

// Migrate creates the schema if it does not exist. All statements run in one
// transaction.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("migrate: db is nil")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, stmt := range schemaStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("migrate: exec statement #%d: %w", i+1, err)
			}
		}
		return nil
	})
}
