// Package services provides domain services that implement business logic
// spanning multiple domain value types without naturally belonging to the
// Order aggregate itself.
//
// The package includes:
//   - ItemNegotiator: a pure domain service that merges the customer's
//     requested baseline with the vendor's adjustment set into the confirmed
//     item set and its items-only total cost
package services
