package order

import (
	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of a grocery order.
// It implements a state machine with actor-gated transitions:
//
//	pending_vendor_confirmation ──confirm──> pending_user_acceptance ──accept──> confirmed
//	        │                                        │                              │
//	      reject                                   reject                     start shopping
//	        │                                        │                              │
//	cancelled_by_vendor                      cancelled_by_user                  shopping
//	                                                                               │
//	                                                                        out_for_delivery
//	                                                                               │
//	                                                                           delivered
//
// delivered, cancelled_by_vendor and cancelled_by_user are terminal: only an
// administrative override can move an order out of them.
//
// Status is stored as its canonical string key. An administrative override may
// introduce a key outside the table below; such values are tolerated on read
// (rendered as-is) but never produced by the regular transitions.
type Status string

const (
	// Unknown represents an uninitialized status. It is never a valid
	// workflow position.
	Unknown Status = ""

	// PendingVendorConfirmation is the initial status: the vendor has not yet
	// reviewed item availability and prices.
	PendingVendorConfirmation Status = "pending_vendor_confirmation"

	// PendingUserAcceptance means the vendor proposed a confirmed item set and
	// the customer must accept or reject it.
	PendingUserAcceptance Status = "pending_user_acceptance"

	// Confirmed means the customer accepted the vendor's proposal; the agreed
	// costs are frozen.
	Confirmed Status = "confirmed"

	// Shopping means the vendor is collecting the items.
	Shopping Status = "shopping"

	// OutForDelivery means the order left the store.
	OutForDelivery Status = "out_for_delivery"

	// Delivered is the terminal happy-path status.
	Delivered Status = "delivered"

	// CancelledByVendor is terminal: the vendor declined the request.
	CancelledByVendor Status = "cancelled_by_vendor"

	// CancelledByUser is terminal: the customer declined the vendor's proposal.
	CancelledByUser Status = "cancelled_by_user"
)

// getValidStatuses returns the set of recognized workflow statuses.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		PendingVendorConfirmation: {},
		PendingUserAcceptance:     {},
		Confirmed:                 {},
		Shopping:                  {},
		OutForDelivery:            {},
		Delivered:                 {},
		CancelledByVendor:         {},
		CancelledByUser:           {},
	}
}

// Validate checks that the status is one of the recognized workflow statuses.
// Values introduced by administrative overrides fail this check; use
// IsRecognized when tolerating them is intended.
func (s Status) Validate() error {
	if !s.IsRecognized() {
		return errs.NewValueIsInvalidError("status is invalid: " + string(s))
	}
	return nil
}

// IsRecognized reports whether the status is one of the table's eight keys.
func (s Status) IsRecognized() bool {
	_, ok := getValidStatuses()[s]
	return ok
}

// IsTerminal reports whether the status permits no further business
// transitions. Administrative overrides are exempt from this check.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == CancelledByVendor || s == CancelledByUser
}

// String returns the canonical string key of the status.
func (s Status) String() string {
	return string(s)
}

// transitionTo enforces the exact-source guard shared by all transitions.
func (s Status) transitionTo(from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}

// Confirm transitions the status to PendingUserAcceptance.
// Only valid from PendingVendorConfirmation.
func (s Status) Confirm() (Status, error) {
	return s.transitionTo(PendingVendorConfirmation, PendingUserAcceptance)
}

// RejectByVendor transitions the status to CancelledByVendor.
// Only valid from PendingVendorConfirmation.
func (s Status) RejectByVendor() (Status, error) {
	return s.transitionTo(PendingVendorConfirmation, CancelledByVendor)
}

// Accept transitions the status to Confirmed.
// Only valid from PendingUserAcceptance.
func (s Status) Accept() (Status, error) {
	return s.transitionTo(PendingUserAcceptance, Confirmed)
}

// RejectByUser transitions the status to CancelledByUser.
// Only valid from PendingUserAcceptance.
func (s Status) RejectByUser() (Status, error) {
	return s.transitionTo(PendingUserAcceptance, CancelledByUser)
}

// StartShopping transitions the status to Shopping.
// Only valid from Confirmed.
func (s Status) StartShopping() (Status, error) {
	return s.transitionTo(Confirmed, Shopping)
}

// MarkOutForDelivery transitions the status to OutForDelivery.
// Only valid from Shopping.
func (s Status) MarkOutForDelivery() (Status, error) {
	return s.transitionTo(Shopping, OutForDelivery)
}

// MarkDelivered transitions the status to Delivered.
// Only valid from OutForDelivery.
func (s Status) MarkDelivered() (Status, error) {
	return s.transitionTo(OutForDelivery, Delivered)
}
