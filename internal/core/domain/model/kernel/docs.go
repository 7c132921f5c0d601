// Package kernel holds the value objects shared by every aggregate of the
// shipment domain: UUID identifiers (including nullable references), Weight
// and the pickup point Route of orders and packages.
package kernel
