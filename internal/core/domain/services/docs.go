// Package services provides domain services that coordinate more than one aggregate.
//
// The package includes:
//   - OrderPlacer: turns a member's requested lines into an Order, reserving stock on the catalog items
package services
