// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - Consolidator: links orders into packages and propagates package status
//     to the linked orders
//
// Both operations mutate an order and a package together; the application
// layer persists the results in one transaction.
package services
