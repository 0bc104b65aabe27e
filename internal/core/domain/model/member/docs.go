// Package member provides the Member aggregate: the party that places orders.
//
// A member only knows its own identity, name and address. The member-to-orders
// direction is not stored on the member; it is answered by the order repository
// (ports.OrderRepository.ListByMember), so there is no second side of the
// relationship to keep in sync.
package member
