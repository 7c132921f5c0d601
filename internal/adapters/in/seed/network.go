// Package seed bulk-loads a network description. References between records
// are by hub name, pickup point name and account email; the loader resolves
// them to ids before creating anything that depends on them.
package seed

import "time"

// Network is the JSON document accepted by Loader.
type Network struct {
	TransitHubs  []TransitHub  `json:"transitHubs"`
	PickupPoints []PickupPoint `json:"pickupPoints"`
	Accounts     []Account     `json:"accounts"`
	Packages     []Package     `json:"packages"`
	Orders       []Order       `json:"orders"`
}

type TransitHub struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// PickupPoint.Hub is a hub name.
type PickupPoint struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Hub      string `json:"hub"`
}

// Account.PickupPoint and Account.TransitHub are names.
type Account struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	PickupPoint string `json:"pickupPoint,omitempty"`
	TransitHub  string `json:"transitHub,omitempty"`
}

// Package is created pending and, once its orders are linked, advanced stage
// by stage up to Status. Ref names it for Order.Package.
type Package struct {
	Ref         string     `json:"ref"`
	PickupFrom  string     `json:"pickupFrom"`
	PickupTo    string     `json:"pickupTo"`
	Shipper     string     `json:"shipper,omitempty"`
	Status      string     `json:"status,omitempty"`
	TransitDate *time.Time `json:"transitDate,omitempty"`
	ArrivalDate *time.Time `json:"arrivalDate,omitempty"`
}

// Order.Sender and Order.Shipper are emails, Order.Package a package Ref.
// Status applies only to orders outside any package.
type Order struct {
	Sender          string     `json:"sender"`
	Weight          float64    `json:"weight"`
	ReceiverNumber  string     `json:"receiverNumber"`
	ReceiverAddress string     `json:"receiverAddress"`
	PickupFrom      string     `json:"pickupFrom"`
	PickupTo        string     `json:"pickupTo"`
	Charge          float64    `json:"charge"`
	SendDate        time.Time  `json:"sendDate"`
	Shipper         string     `json:"shipper,omitempty"`
	Package         string     `json:"package,omitempty"`
	Status          string     `json:"status,omitempty"`
	ArrivalDate     *time.Time `json:"arrivalDate,omitempty"`
}

// Summary counts what a load created.
type Summary struct {
	TransitHubs  int
	PickupPoints int
	Accounts     int
	Packages     int
	Orders       int
}
