// Package order implements the Order aggregate: a purchase by one member, shipped
// by one Delivery and made of ordered OrderItem lines.
//
// The package includes:
//   - Order: the aggregate root; construction, cancellation, total price and delivery progress
//   - OrderItem: one purchased line; takes units out of stock on creation and gives them back on cancel
//   - Delivery: the shipment record owned by an order
//   - Status and DeliveryStatus: the two state machines
//
// Key business rules:
//   - Lines and the delivery are bound to exactly one order
//   - An order whose delivery is Complete cannot be cancelled
//   - Cancellation is all-or-nothing and happens at most once
//   - Delivery moves Ready -> InProgress -> Complete, and only while the order is Ordered
package order
