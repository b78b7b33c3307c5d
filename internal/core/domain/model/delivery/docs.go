// Package delivery provides the delivery personnel entities: DeliveryPerson
// and the Assignment binding at most one person to an order.
//
// Key business rules:
//   - At most one assignment exists per order (enforced by a unique
//     constraint in the persistence layer as well)
//   - Only active delivery people can receive assignments
//   - A delivery person with any assignment cannot be deleted; deactivation
//     is the way to retire personnel while keeping history
//   - Assigning and unassigning never touch the order's lifecycle status;
//     administrators drive both independently
package delivery
