package postgres

import (
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/core/ports"
)

// Event types written to the outbox.
const (
	EventOrderChanged   = "order.changed"
	EventPackageChanged = "package.changed"
)

// OrderChanged is the payload of an order.changed message.
type OrderChanged struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Package     *string    `json:"package,omitempty"`
	Shipper     *string    `json:"shipper,omitempty"`
	PickupFrom  string     `json:"pickupFrom"`
	PickupTo    string     `json:"pickupTo"`
	ArrivalDate *time.Time `json:"arrivalDate,omitempty"`
}

// PackageChanged is the payload of a package.changed message.
type PackageChanged struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Quantity    int        `json:"quantity"`
	Weight      float64    `json:"weight"`
	Shipper     *string    `json:"shipper,omitempty"`
	PickupFrom  string     `json:"pickupFrom"`
	PickupTo    string     `json:"pickupTo"`
	TransitDate *time.Time `json:"transitDate,omitempty"`
	ArrivalDate *time.Time `json:"arrivalDate,omitempty"`
}

// messageFor builds the outbox message of a tracked aggregate. Aggregates
// other than orders and packages are not published and report false.
func messageFor(aggregate any, at time.Time) (ports.OutboxMessage, bool, error) {
	var (
		msg     ports.OutboxMessage
		payload any
	)

	switch a := aggregate.(type) {
	case *order.Order:
		msg = ports.OutboxMessage{AggregateType: ports.AggregateOrder, AggregateID: a.ID(), EventType: EventOrderChanged}
		payload = OrderChanged{
			ID:          a.ID().String(),
			Status:      a.Status().String(),
			Package:     optionalString(a.Package()),
			Shipper:     optionalString(a.Shipper()),
			PickupFrom:  a.Route().From().String(),
			PickupTo:    a.Route().To().String(),
			ArrivalDate: a.ArrivalDate(),
		}
	case *pack.Package:
		msg = ports.OutboxMessage{AggregateType: ports.AggregatePackage, AggregateID: a.ID(), EventType: EventPackageChanged}
		payload = PackageChanged{
			ID:          a.ID().String(),
			Status:      a.Status().String(),
			Quantity:    a.Quantity(),
			Weight:      a.Weight().Float64(),
			Shipper:     optionalString(a.Shipper()),
			PickupFrom:  a.Route().From().String(),
			PickupTo:    a.Route().To().String(),
			TransitDate: a.TransitDate(),
			ArrivalDate: a.ArrivalDate(),
		}
	default:
		return ports.OutboxMessage{}, false, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, false, err
	}

	msg.ID = kernel.NewUUID()
	msg.Payload = body
	msg.OccurredAt = at
	return msg, true, nil
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
