// Package item provides the Item aggregate: a catalog entry with a unit price and
// the stock quantity that order lines draw from.
//
// Key business rules:
//   - Stock quantity never goes below zero (RemoveStock fails with ErrNotEnoughStock)
//   - Stock changes are always by a positive quantity
//   - RestoreStock has no upper bound
package item
