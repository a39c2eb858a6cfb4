// Package route provides the domain model for the assignment record linking
// a parcel to a delivery agent.
//
// Key business rules:
//   - Exactly one route is created per parcel, atomically with it
//   - The route carries a denormalized destination and schedule; destination
//     edits after creation land here, not on the parcel
//   - Assignment state cycles: Available -> Pending -> Available
//   - A pending route always has an assigned agent; an available route never does
//   - Only the assigned agent may release a pending route
package route
