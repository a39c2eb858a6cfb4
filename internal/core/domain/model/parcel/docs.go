// Package parcel provides the domain model for the shippable item being
// tracked. It implements the Parcel aggregate root and its lifecycle state
// machine.
//
// Key business rules:
//   - Parcels must have a valid identifier, destination, schedule window,
//     and creator identity
//   - Status follows a strict forward-only workflow:
//     Available -> Pending -> InTransit -> Completed
//   - Destination edits are only allowed while Available or Pending
//   - Delivery completion requires the parcel to be InTransit; the matching
//     confirmation code is verified by the use case before completion
package parcel
