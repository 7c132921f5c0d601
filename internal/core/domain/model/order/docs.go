// Package order provides the Order aggregate: a single customer shipment and
// its lifecycle.
//
// The package includes:
//   - Order: identity, customer details, shipper assignment and package link
//   - Status: pending, delivering, delivered, cancelled with terminal checks
//
// Key business rules:
//   - New orders are pending, unlinked and unassigned
//   - Delivered and cancelled orders reject every further status change
//   - The package link is written once by consolidation and never cleared
//   - Tracking a package never moves an order backwards or out of a terminal state
package order
