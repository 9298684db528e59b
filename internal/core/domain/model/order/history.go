package order

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrStatusHistoryEntryIsNotConstructed is returned when a StatusHistoryEntry
// was not created via NewStatusHistoryEntry.
var ErrStatusHistoryEntryIsNotConstructed = errs.NewValueIsRequiredError(
	"StatusHistoryEntry must be created via NewStatusHistoryEntry",
)

// StatusHistoryEntry is one record of the order's append-only audit trail.
// Entries are write-once: corrections are expressed as new entries, never as
// edits. Storage order is strictly chronological append; timestamps are
// non-decreasing across the sequence.
type StatusHistoryEntry struct {
	status    Status
	timestamp time.Time
	changedBy Role
	userID    *kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewStatusHistoryEntry creates a validated audit record. userID is optional
// (the system role carries none); reason is optional free text, set on
// rejections and administrative overrides.
func NewStatusHistoryEntry(
	status Status,
	timestamp time.Time,
	changedBy Role,
	userID *kernel.UUID,
	reason string,
) (StatusHistoryEntry, error) {
	if status == Unknown {
		return StatusHistoryEntry{}, errs.NewValueIsRequiredError("status")
	}
	if timestamp.IsZero() {
		return StatusHistoryEntry{}, errs.NewValueIsRequiredError("timestamp")
	}
	if err := changedBy.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return StatusHistoryEntry{}, err
		}
	}

	return StatusHistoryEntry{
		status:    status,
		timestamp: timestamp,
		changedBy: changedBy,
		userID:    userID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status the order held after this entry was appended.
func (e StatusHistoryEntry) Status() Status { return e.status }

// Timestamp returns when the transition was recorded.
func (e StatusHistoryEntry) Timestamp() time.Time { return e.timestamp }

// ChangedBy returns the role of the actor who initiated the transition.
func (e StatusHistoryEntry) ChangedBy() Role { return e.changedBy }

// UserID returns the initiating actor's identifier, if known.
func (e StatusHistoryEntry) UserID() *kernel.UUID { return e.userID }

// Reason returns the free-text reason attached to the transition, if any.
func (e StatusHistoryEntry) Reason() string { return e.reason }

// Validate ensures the entry was created via NewStatusHistoryEntry.
func (e StatusHistoryEntry) Validate() error {
	return e.guard.Validate(ErrStatusHistoryEntryIsNotConstructed)
}
