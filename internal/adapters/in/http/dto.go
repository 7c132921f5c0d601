package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

type Created struct {
	ID uuid.UUID `json:"id"`
}

type NewTransitHub struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type NewPickupPoint struct {
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Hub      uuid.UUID `json:"hub"`
}

type TransitHub struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
}

type PickupPoint struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Hub      uuid.UUID `json:"hub"`
}

type NewAccount struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	PickupPoint *uuid.UUID `json:"pickupPoint"`
	TransitHub  *uuid.UUID `json:"transitHub"`
}

type PasswordChange struct {
	Current string `json:"current"`
	Next    string `json:"next"`
}

type Account struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	PickupPoint *uuid.UUID `json:"pickupPoint"`
	TransitHub  *uuid.UUID `json:"transitHub"`
}

type NewOrder struct {
	Sender          uuid.UUID `json:"sender"`
	Weight          float64   `json:"weight"`
	ReceiverNumber  string    `json:"receiverNumber"`
	ReceiverAddress string    `json:"receiverAddress"`
	PickupFrom      uuid.UUID `json:"pickupFrom"`
	PickupTo        uuid.UUID `json:"pickupTo"`
	Charge          float64   `json:"charge"`
	SendDate        time.Time `json:"sendDate"`
}

type Order struct {
	ID              uuid.UUID  `json:"id"`
	Sender          uuid.UUID  `json:"sender"`
	Weight          float64    `json:"weight"`
	ReceiverNumber  string     `json:"receiverNumber"`
	ReceiverAddress string     `json:"receiverAddress"`
	PickupFrom      uuid.UUID  `json:"pickupFrom"`
	PickupTo        uuid.UUID  `json:"pickupTo"`
	Package         *uuid.UUID `json:"package"`
	Charge          float64    `json:"charge"`
	SendDate        time.Time  `json:"sendDate"`
	ArrivalDate     *time.Time `json:"arrivalDate"`
	Shipper         *uuid.UUID `json:"shipper"`
	Status          string     `json:"status"`
}

// ShipperAssignment clears the shipper when Shipper is null.
type ShipperAssignment struct {
	Shipper *uuid.UUID `json:"shipper"`
}

type Delivery struct {
	ArrivalDate time.Time `json:"arrivalDate"`
}

type NewPackage struct {
	PickupFrom uuid.UUID  `json:"pickupFrom"`
	PickupTo   uuid.UUID  `json:"pickupTo"`
	Shipper    *uuid.UUID `json:"shipper"`
}

type Package struct {
	ID          uuid.UUID  `json:"id"`
	PickupFrom  uuid.UUID  `json:"pickupFrom"`
	PickupTo    uuid.UUID  `json:"pickupTo"`
	Quantity    int        `json:"quantity"`
	Weight      float64    `json:"weight"`
	Shipper     *uuid.UUID `json:"shipper"`
	TransitDate *time.Time `json:"transitDate"`
	ArrivalDate *time.Time `json:"arrivalDate"`
	Status      string     `json:"status"`
}

// Advance moves a package to Status. At defaults to the time of the request.
type Advance struct {
	Status string     `json:"status"`
	At     *time.Time `json:"at"`
}

type Consolidation struct {
	OrderID uuid.UUID `json:"orderId"`
}

type Revenue struct {
	PickupPoint uuid.UUID  `json:"pickupPoint"`
	From        *time.Time `json:"from"`
	To          *time.Time `json:"to"`
	Revenue     float64    `json:"revenue"`
}

func toTransitHub(r queries.TransitHubResponse) TransitHub {
	return TransitHub{ID: r.ID.Bytes(), Name: r.Name, Location: r.Location}
}

func toPickupPoint(r queries.PickupPointResponse) PickupPoint {
	return PickupPoint{ID: r.ID.Bytes(), Name: r.Name, Location: r.Location, Hub: r.Hub.Bytes()}
}

func toAccount(r queries.AccountResponse) Account {
	return Account{
		ID:          r.ID.Bytes(),
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Role:        r.Role.String(),
		Status:      r.Status.String(),
		PickupPoint: optional(r.PickupPoint),
		TransitHub:  optional(r.TransitHub),
	}
}

func toOrder(r queries.OrderResponse) Order {
	return Order{
		ID:              r.ID.Bytes(),
		Sender:          r.Sender.Bytes(),
		Weight:          r.Weight,
		ReceiverNumber:  r.ReceiverNumber,
		ReceiverAddress: r.ReceiverAddress,
		PickupFrom:      r.PickupFrom.Bytes(),
		PickupTo:        r.PickupTo.Bytes(),
		Package:         optional(r.Package),
		Charge:          r.Charge,
		SendDate:        r.SendDate,
		ArrivalDate:     r.ArrivalDate,
		Shipper:         optional(r.Shipper),
		Status:          r.Status.String(),
	}
}

func toPackage(r queries.PackageResponse) Package {
	return Package{
		ID:          r.ID.Bytes(),
		PickupFrom:  r.PickupFrom.Bytes(),
		PickupTo:    r.PickupTo.Bytes(),
		Quantity:    r.Quantity,
		Weight:      r.Weight,
		Shipper:     optional(r.Shipper),
		TransitDate: r.TransitDate,
		ArrivalDate: r.ArrivalDate,
		Status:      r.Status.String(),
	}
}
