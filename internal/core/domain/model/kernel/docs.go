// Package kernel provides the shared value objects of the shop domain.
//
// The package includes:
//   - UUID: identity for aggregates and entities
//   - Money: non-negative amounts in minor currency units
//   - Address: the city/street/zipcode triple used by members and deliveries
//   - Clock: the injectable time source for aggregate timestamps
//
// Value objects are immutable and must be created through their constructors;
// zero values fail Validate.
package kernel
