package queries

import (
	"database/sql"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"

	"github.com/google/uuid"
)

const orderColumns = `id, sender, weight, receiver_number, receiver_address, pickup_from, pickup_to,
	package, charge, send_date, arrival_date, shipper, status`

const packageColumns = `id, pickup_from, pickup_to, quantity, weight, shipper, transit_date, arrival_date, status`

// where joins predicates with AND. An empty list yields no WHERE clause.
func where(predicates []Predicate) (string, []any) {
	if len(predicates) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(predicates))
	var args []any
	for _, p := range predicates {
		clauses = append(clauses, p.Clause)
		args = append(args, p.Args...)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID              kernel.UUID
	Sender          kernel.UUID
	Weight          float64
	ReceiverNumber  string
	ReceiverAddress string
	PickupFrom      kernel.UUID
	PickupTo        kernel.UUID
	Package         *kernel.UUID
	Charge          float64
	SendDate        time.Time
	ArrivalDate     *time.Time
	Shipper         *kernel.UUID
	Status          order.Status
}

func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp                 OrderResponse
		id, sender, from, to uuid.UUID
		packageID, shipper   *uuid.UUID
		status               string
		err                  error
	)

	if err = rows.Scan(
		&id, &sender, &resp.Weight, &resp.ReceiverNumber, &resp.ReceiverAddress, &from, &to,
		&packageID, &resp.Charge, &resp.SendDate, &resp.ArrivalDate, &shipper, &status,
	); err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.Sender, err = kernel.UUIDFromBytes(sender[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.PickupFrom, err = kernel.UUIDFromBytes(from[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.PickupTo, err = kernel.UUIDFromBytes(to[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.Package, err = kernel.OptionalUUIDFromRaw(packageID); err != nil {
		return OrderResponse{}, err
	}
	if resp.Shipper, err = kernel.OptionalUUIDFromRaw(shipper); err != nil {
		return OrderResponse{}, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return OrderResponse{}, err
	}
	return resp, nil
}

// PackageResponse is the read model of a package.
type PackageResponse struct {
	ID          kernel.UUID
	PickupFrom  kernel.UUID
	PickupTo    kernel.UUID
	Quantity    int
	Weight      float64
	Shipper     *kernel.UUID
	TransitDate *time.Time
	ArrivalDate *time.Time
	Status      pack.Status
}

func scanPackage(rows *sql.Rows) (PackageResponse, error) {
	var (
		resp         PackageResponse
		id, from, to uuid.UUID
		shipper      *uuid.UUID
		status       string
		err          error
	)

	if err = rows.Scan(
		&id, &from, &to, &resp.Quantity, &resp.Weight, &shipper, &resp.TransitDate, &resp.ArrivalDate, &status,
	); err != nil {
		return PackageResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return PackageResponse{}, err
	}
	if resp.PickupFrom, err = kernel.UUIDFromBytes(from[:]); err != nil {
		return PackageResponse{}, err
	}
	if resp.PickupTo, err = kernel.UUIDFromBytes(to[:]); err != nil {
		return PackageResponse{}, err
	}
	if resp.Shipper, err = kernel.OptionalUUIDFromRaw(shipper); err != nil {
		return PackageResponse{}, err
	}
	if resp.Status, err = pack.ParseStatus(status); err != nil {
		return PackageResponse{}, err
	}
	return resp, nil
}
