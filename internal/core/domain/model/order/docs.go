// Package order provides domain entities and business logic for the grocery
// order negotiation and fulfillment workflow. It implements the Order
// aggregate root with lifecycle management, actor-gated state transitions and
// an append-only audit trail.
//
// The package includes:
//   - Order: The aggregate root holding identity, parties, items, costs, status and history
//   - Status: A state machine that enforces valid transitions per actor
//   - RequestedItem / ConfirmedItem / ItemAdjustment: negotiation value types
//   - StatusHistoryEntry: a write-once audit record
//
// Key business rules:
//   - The requested baseline is fixed at creation and never overwritten
//   - The vendor-confirmed set is written once, at the confirm transition
//   - Final agreed costs are a frozen snapshot taken at customer acceptance
//   - Terminal statuses admit no further transitions except the admin override
//   - Every transition appends exactly one history entry
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
