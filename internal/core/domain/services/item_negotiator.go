package services

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
)

var (
	// ErrDuplicateAdjustment is the cause attached when the vendor supplies two
	// adjustments for the same line.
	ErrDuplicateAdjustment = errors.New("duplicate adjustment for item")

	// ErrSubstitutionNeedsName is the cause attached when a substitution does
	// not carry a replacement name different from the requested one.
	ErrSubstitutionNeedsName = errors.New("substitution requires a different item name")

	// ErrNewLineIncomplete is the cause attached when a vendor-introduced line
	// misses a name, quantity, unit or price.
	ErrNewLineIncomplete = errors.New("vendor-introduced line requires name, quantity, unit and price")
)

// ItemNegotiator merges the customer's requested baseline with the vendor's
// adjustment set into the confirmed item set and its items-only total.
//
// Rules:
//   - A requested line without an adjustment is confirmed as-is, available,
//     at its original estimated price.
//   - A line marked unavailable is retained for transparency but excluded
//     from the total; it is never silently dropped.
//   - A substitution carries the replacement name; the requested baseline is
//     left untouched for side-by-side display.
//   - An adjustment whose itemId has no requested counterpart introduces a
//     new line; it must be fully specified and has no original price.
//   - The total is the sum of confirmedPrice x quantity over available and
//     substituted lines. The delivery fee is added by the aggregate.
//
// Negotiate is a pure function over value types: it never mutates its inputs
// and computes nothing from ambient state.
type ItemNegotiator struct{}

// NewItemNegotiator creates a new ItemNegotiator instance.
func NewItemNegotiator() ItemNegotiator {
	return ItemNegotiator{}
}

// Negotiate computes the confirmed item set and its items-only total cost.
// Requested lines keep their input order; vendor-introduced lines follow in
// adjustment order. Any malformed adjustment fails the whole negotiation
// before anything is committed.
func (ItemNegotiator) Negotiate(
	requested []order.RequestedItem,
	adjustments []order.ItemAdjustment,
) ([]order.ConfirmedItem, kernel.Money, error) {
	byItemID := make(map[string]order.ItemAdjustment, len(adjustments))
	newLines := make([]order.ItemAdjustment, 0)
	requestedIDs := make(map[string]struct{}, len(requested))
	for _, r := range requested {
		requestedIDs[r.ItemID()] = struct{}{}
	}

	for _, adj := range adjustments {
		if err := adj.Validate(); err != nil {
			return nil, kernel.Money{}, err
		}
		if _, ok := byItemID[adj.ItemID()]; ok {
			return nil, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
				"adjustments",
				fmt.Errorf("%w: %s", ErrDuplicateAdjustment, adj.ItemID()),
			)
		}
		byItemID[adj.ItemID()] = adj
		if _, ok := requestedIDs[adj.ItemID()]; !ok {
			newLines = append(newLines, adj)
		}
	}

	confirmed := make([]order.ConfirmedItem, 0, len(requested)+len(newLines))
	for _, r := range requested {
		item, err := confirmRequestedLine(r, byItemID)
		if err != nil {
			return nil, kernel.Money{}, err
		}
		confirmed = append(confirmed, item)
	}

	for _, adj := range newLines {
		item, err := confirmNewLine(adj)
		if err != nil {
			return nil, kernel.Money{}, err
		}
		confirmed = append(confirmed, item)
	}

	total, err := kernel.NewMoney(0)
	if err != nil {
		return nil, kernel.Money{}, err
	}
	for _, item := range confirmed {
		if !item.CountsTowardTotal() {
			continue
		}
		lineCost, err := item.LineCost()
		if err != nil {
			return nil, kernel.Money{}, err
		}
		total, err = total.Add(lineCost)
		if err != nil {
			return nil, kernel.Money{}, err
		}
	}

	return confirmed, total, nil
}

// confirmRequestedLine builds the confirmed line for one requested item,
// applying the vendor's adjustment when present.
func confirmRequestedLine(
	r order.RequestedItem,
	byItemID map[string]order.ItemAdjustment,
) (order.ConfirmedItem, error) {
	originalPrice := r.OriginalEstimatedPrice()

	adj, adjusted := byItemID[r.ItemID()]
	if !adjusted {
		return order.NewConfirmedItem(
			r.ItemID(), r.Name(), r.Quantity(), r.Unit(),
			&originalPrice, originalPrice, "", order.Available,
		)
	}

	name := r.Name()
	if adj.Availability() == order.SubstitutedByVendor {
		if adj.Name() == "" || adj.Name() == r.Name() {
			return order.ConfirmedItem{}, errs.NewValueIsInvalidErrorWithCause(
				"adjustments",
				fmt.Errorf("%w: %s", ErrSubstitutionNeedsName, r.ItemID()),
			)
		}
		name = adj.Name()
	}

	confirmedPrice := originalPrice
	if adj.ConfirmedPrice() != nil {
		confirmedPrice = *adj.ConfirmedPrice()
	}

	return order.NewConfirmedItem(
		r.ItemID(), name, r.Quantity(), r.Unit(),
		&originalPrice, confirmedPrice, adj.Note(), adj.Availability(),
	)
}

// confirmNewLine builds a confirmed line for an adjustment with no requested
// counterpart. The original price is absent: there is nothing to compare
// against.
func confirmNewLine(adj order.ItemAdjustment) (order.ConfirmedItem, error) {
	if adj.Name() == "" || adj.Quantity() <= 0 || adj.Unit() == "" ||
		adj.ConfirmedPrice() == nil || adj.Availability() != order.Available {
		return order.ConfirmedItem{}, errs.NewValueIsInvalidErrorWithCause(
			"adjustments",
			fmt.Errorf("%w: %s", ErrNewLineIncomplete, adj.ItemID()),
		)
	}

	return order.NewConfirmedItem(
		adj.ItemID(), adj.Name(), adj.Quantity(), adj.Unit(),
		nil, *adj.ConfirmedPrice(), adj.Note(), order.Available,
	)
}
