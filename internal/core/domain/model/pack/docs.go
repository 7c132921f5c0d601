// Package pack provides the Package aggregate: a carrier unit that bundles
// consolidated orders for a multi-leg route.
//
// Key business rules:
//   - quantity and weight start at zero and change only through Include
//   - status advances one stage at a time:
//     pending -> delivering1 -> delivering2 -> delivering3 -> delivered
//   - delivering1 stamps the transit date, delivered stamps the arrival date
package pack
