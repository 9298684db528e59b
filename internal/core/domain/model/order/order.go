package order

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoDeliverableItems is the cause attached to the validation error
	// returned when a confirmed item set contains nothing to deliver.
	ErrNoDeliverableItems = errors.New("confirmed items contain no available or substituted line")
)

// Order is the aggregate root for one grocery delivery request: identity,
// parties, the requested baseline, the vendor-confirmed set, derived costs,
// the current status and the append-only status history.
//
// Invariants maintained by the aggregate:
//   - status always equals the status of the last history entry
//   - requestedItems are fixed at creation and never overwritten
//   - vendorConfirmedItems are written once, at the confirm transition
//   - final agreed costs are frozen at acceptance and never recomputed
//   - history only grows; timestamps are non-decreasing
//   - terminal statuses admit no further transitions except the admin override
//
// All mutation goes through the transition methods; a failed transition leaves
// the aggregate untouched.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	vendorID        kernel.UUID
	deliveryAddress string

	status         Status
	requestedItems []RequestedItem
	confirmedItems []ConfirmedItem

	initialOrderCost    kernel.Money
	deliveryFee         kernel.Money
	proposedItemTotal   *kernel.Money
	proposedTotal       *kernel.Money
	finalAgreedItemCost *kernel.Money
	finalAgreedCost     *kernel.Money

	vendorOverallNote     string
	vendorRejectionReason string
	userRejectionReason   string

	statusHistory []StatusHistoryEntry

	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic-concurrency token checked by the repository
	// on every write. Two actors racing from the same source status cannot
	// both succeed.
	version int64

	events []StatusChangedEvent

	isConstructed bool
}

// NewOrder creates an order from the shopping-list handoff. The order starts
// in PendingVendorConfirmation with one system-authored history entry, and the
// initial cost is the sum of the requested line costs plus the delivery fee.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	deliveryAddress string,
	requestedItems []RequestedItem,
	deliveryFee kernel.Money,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		vendorID.Validate(),
		deliveryFee.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if len(requestedItems) == 0 {
		return nil, errs.NewValueIsRequiredError("requestedItems")
	}

	initialCost := deliveryFee
	for _, item := range requestedItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		lineCost, err := item.LineCost()
		if err != nil {
			return nil, err
		}
		initialCost, err = initialCost.Add(lineCost)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	entry, err := NewStatusHistoryEntry(PendingVendorConfirmation, now, RoleSystem, nil, "")
	if err != nil {
		return nil, err
	}

	o := &Order{
		id:               id,
		customerID:       customerID,
		vendorID:         vendorID,
		deliveryAddress:  deliveryAddress,
		status:           PendingVendorConfirmation,
		requestedItems:   append([]RequestedItem(nil), requestedItems...),
		initialOrderCost: initialCost,
		deliveryFee:      deliveryFee,
		statusHistory:    []StatusHistoryEntry{entry},
		createdAt:        now,
		updatedAt:        now,
		version:          1,
		isConstructed:    true,
	}
	o.events = append(o.events, newStatusChangedEvent(o, RoleSystem, now))

	return o, nil
}

// RestoreOrderParams carries the persisted state needed to rehydrate an order.
type RestoreOrderParams struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	VendorID        kernel.UUID
	DeliveryAddress string

	Status         Status
	RequestedItems []RequestedItem
	ConfirmedItems []ConfirmedItem

	InitialOrderCost         kernel.Money
	DeliveryFee              kernel.Money
	ProposedItemTotalCost    *kernel.Money
	ProposedTotalCost        *kernel.Money
	FinalAgreedItemTotalCost *kernel.Money
	FinalAgreedTotalCost     *kernel.Money

	VendorOverallNote     string
	VendorRejectionReason string
	UserRejectionReason   string

	StatusHistory []StatusHistoryEntry

	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

// RestoreOrder rehydrates an order from persistence. The status is required
// but deliberately not checked for membership in the transition table: an
// administrative override can introduce a key outside it, and such orders must
// still load (spec of the display surfaces requires rendering them as-is).
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.CustomerID.Validate(),
		params.VendorID.Validate(),
		params.InitialOrderCost.Validate(),
		params.DeliveryFee.Validate(),
	); err != nil {
		return nil, err
	}
	if params.Status == Unknown {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if len(params.StatusHistory) == 0 {
		return nil, errs.NewValueIsRequiredError("statusHistory")
	}
	if params.Version <= 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	return &Order{
		id:                    params.ID,
		customerID:            params.CustomerID,
		vendorID:              params.VendorID,
		deliveryAddress:       params.DeliveryAddress,
		status:                params.Status,
		requestedItems:        append([]RequestedItem(nil), params.RequestedItems...),
		confirmedItems:        append([]ConfirmedItem(nil), params.ConfirmedItems...),
		initialOrderCost:      params.InitialOrderCost,
		deliveryFee:           params.DeliveryFee,
		proposedItemTotal:     params.ProposedItemTotalCost,
		proposedTotal:         params.ProposedTotalCost,
		finalAgreedItemCost:   params.FinalAgreedItemTotalCost,
		finalAgreedCost:       params.FinalAgreedTotalCost,
		vendorOverallNote:     params.VendorOverallNote,
		vendorRejectionReason: params.VendorRejectionReason,
		userRejectionReason:   params.UserRejectionReason,
		statusHistory:         append([]StatusHistoryEntry(nil), params.StatusHistory...),
		createdAt:             params.CreatedAt,
		updatedAt:             params.UpdatedAt,
		version:               params.Version,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the customer party reference.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// VendorID returns the vendor party reference.
func (o *Order) VendorID() kernel.UUID { return o.vendorID }

// DeliveryAddress returns the destination captured at creation.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Status returns the current workflow position.
func (o *Order) Status() Status { return o.status }

// RequestedItems returns a copy of the immutable requested baseline.
func (o *Order) RequestedItems() []RequestedItem {
	return append([]RequestedItem(nil), o.requestedItems...)
}

// VendorConfirmedItems returns a copy of the vendor-confirmed set; empty until
// the confirm transition.
func (o *Order) VendorConfirmedItems() []ConfirmedItem {
	return append([]ConfirmedItem(nil), o.confirmedItems...)
}

// InitialOrderCost returns the estimate computed at creation.
func (o *Order) InitialOrderCost() kernel.Money { return o.initialOrderCost }

// DeliveryFee returns the fee fixed at creation.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// VendorProposedItemTotalCost returns the items-only proposed cost, nil before confirm.
func (o *Order) VendorProposedItemTotalCost() *kernel.Money { return copyMoney(o.proposedItemTotal) }

// VendorProposedTotalCost returns the proposed cost including the delivery
// fee, nil before confirm.
func (o *Order) VendorProposedTotalCost() *kernel.Money { return copyMoney(o.proposedTotal) }

// FinalAgreedItemTotalCost returns the frozen items-only cost, nil before acceptance.
func (o *Order) FinalAgreedItemTotalCost() *kernel.Money { return copyMoney(o.finalAgreedItemCost) }

// FinalAgreedTotalCost returns the frozen total the customer agreed to pay,
// nil before acceptance.
func (o *Order) FinalAgreedTotalCost() *kernel.Money { return copyMoney(o.finalAgreedCost) }

// VendorOverallNote returns the note the vendor attached at confirm.
func (o *Order) VendorOverallNote() string { return o.vendorOverallNote }

// VendorRejectionReason returns the reason stored at vendor rejection.
func (o *Order) VendorRejectionReason() string { return o.vendorRejectionReason }

// UserRejectionReason returns the reason stored at customer rejection.
func (o *Order) UserRejectionReason() string { return o.userRejectionReason }

// StatusHistory returns a copy of the append-only audit trail in storage
// (ascending) order.
func (o *Order) StatusHistory() []StatusHistoryEntry {
	return append([]StatusHistoryEntry(nil), o.statusHistory...)
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version returns the optimistic-concurrency token loaded from persistence.
func (o *Order) Version() int64 { return o.version }

// PullEvents returns the uncommitted status-changed events and clears them.
// Handlers call this once per transaction to fill the outbox.
func (o *Order) PullEvents() []StatusChangedEvent {
	events := o.events
	o.events = nil
	return events
}

// Confirm applies the vendor's confirmation: the negotiated item set, the
// items-only total computed by the negotiator, and an optional overall note.
// The full proposed total adds the delivery fee. Fails with a validation
// error when the set contains nothing to deliver.
func (o *Order) Confirm(
	items []ConfirmedItem,
	itemTotal kernel.Money,
	overallNote string,
	vendorUserID kernel.UUID,
) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if err = vendorUserID.Validate(); err != nil {
		return err
	}
	if err = itemTotal.Validate(); err != nil {
		return err
	}
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("confirmedItems")
	}

	deliverable := false
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return err
		}
		if item.CountsTowardTotal() {
			deliverable = true
		}
	}
	if !deliverable {
		return errs.NewValueIsInvalidErrorWithCause("confirmedItems", ErrNoDeliverableItems)
	}

	proposedTotal, err := itemTotal.Add(o.deliveryFee)
	if err != nil {
		return err
	}
	if err = o.apply(newStatus, RoleVendor, &vendorUserID, ""); err != nil {
		return err
	}

	o.confirmedItems = append([]ConfirmedItem(nil), items...)
	o.proposedItemTotal = &itemTotal
	o.proposedTotal = &proposedTotal
	o.vendorOverallNote = overallNote
	return nil
}

// RejectByVendor declines the request before confirmation and stores the
// vendor's reason.
func (o *Order) RejectByVendor(reason string, vendorUserID kernel.UUID) error {
	newStatus, err := o.status.RejectByVendor()
	if err != nil {
		return err
	}
	if err = vendorUserID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("vendorRejectionReason")
	}

	if err = o.apply(newStatus, RoleVendor, &vendorUserID, reason); err != nil {
		return err
	}

	o.vendorRejectionReason = reason
	return nil
}

// Accept freezes the vendor-proposed figures as the final agreed costs. The
// snapshot is deliberate: no later mutation path can retroactively alter what
// the customer agreed to pay.
func (o *Order) Accept(customerUserID kernel.UUID) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	if err = customerUserID.Validate(); err != nil {
		return err
	}
	// An admin override can park an order in pending_user_acceptance without
	// a vendor confirmation. There is nothing to agree to in that case.
	if o.proposedTotal == nil || o.proposedItemTotal == nil {
		return errs.NewValueIsRequiredError("vendorProposedTotalCost")
	}

	if err = o.apply(newStatus, RoleCustomer, &customerUserID, ""); err != nil {
		return err
	}

	o.finalAgreedItemCost = copyMoney(o.proposedItemTotal)
	o.finalAgreedCost = copyMoney(o.proposedTotal)
	return nil
}

// RejectByUser declines the vendor's proposal and stores the customer's reason.
func (o *Order) RejectByUser(reason string, customerUserID kernel.UUID) error {
	newStatus, err := o.status.RejectByUser()
	if err != nil {
		return err
	}
	if err = customerUserID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("userRejectionReason")
	}

	if err = o.apply(newStatus, RoleCustomer, &customerUserID, reason); err != nil {
		return err
	}

	o.userRejectionReason = reason
	return nil
}

// StartShopping moves a confirmed order into the shopping phase.
func (o *Order) StartShopping(vendorUserID kernel.UUID) error {
	newStatus, err := o.status.StartShopping()
	if err != nil {
		return err
	}
	if err = vendorUserID.Validate(); err != nil {
		return err
	}

	return o.apply(newStatus, RoleVendor, &vendorUserID, "")
}

// MarkOutForDelivery records that the order left the store.
func (o *Order) MarkOutForDelivery(vendorUserID kernel.UUID) error {
	newStatus, err := o.status.MarkOutForDelivery()
	if err != nil {
		return err
	}
	if err = vendorUserID.Validate(); err != nil {
		return err
	}

	return o.apply(newStatus, RoleVendor, &vendorUserID, "")
}

// MarkDelivered completes the order.
func (o *Order) MarkDelivered(vendorUserID kernel.UUID) error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}
	if err = vendorUserID.Validate(); err != nil {
		return err
	}

	return o.apply(newStatus, RoleVendor, &vendorUserID, "")
}

// AdminOverride sets the status directly, bypassing the transition table. It
// is permitted from any state, including terminal ones, and is the only path
// that may introduce a status outside the table. The override is logged
// distinctly through the history entry's admin role and reason.
func (o *Order) AdminOverride(newStatus Status, reason string, adminUserID kernel.UUID) error {
	if err := adminUserID.Validate(); err != nil {
		return err
	}
	if newStatus == Unknown {
		return errs.NewValueIsRequiredError("status")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("overrideReason")
	}

	return o.apply(newStatus, RoleAdmin, &adminUserID, reason)
}

// apply commits a transition: appends the history entry, sets the status and
// refreshes updatedAt. The entry is constructed before any field is touched
// so a construction failure leaves the aggregate unchanged.
func (o *Order) apply(newStatus Status, actor Role, userID *kernel.UUID, reason string) error {
	now := o.nextTimestamp()
	entry, err := NewStatusHistoryEntry(newStatus, now, actor, userID, reason)
	if err != nil {
		return err
	}

	o.statusHistory = append(o.statusHistory, entry)
	o.status = newStatus
	o.updatedAt = now
	o.events = append(o.events, newStatusChangedEvent(o, actor, now))
	return nil
}

// nextTimestamp returns the current time clamped so history timestamps never
// decrease, even across clock adjustments.
func (o *Order) nextTimestamp() time.Time {
	now := time.Now().UTC()
	if n := len(o.statusHistory); n > 0 {
		if last := o.statusHistory[n-1].Timestamp(); now.Before(last) {
			now = last
		}
	}
	return now
}

func copyMoney(m *kernel.Money) *kernel.Money {
	if m == nil {
		return nil
	}
	v := *m
	return &v
}
