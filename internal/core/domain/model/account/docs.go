// Package account models the people acting on the network: customers who send
// orders, shippers who carry them, and staff or managers attached to a single
// workplace. Credentials are stored as an opaque hash produced by an external
// hasher; this package never sees plaintext passwords.
//
// Workplace rule:
//   - Staff and Manager accounts have exactly one of pickup point or transit hub
//   - Customer and Shipper accounts have neither
package account
