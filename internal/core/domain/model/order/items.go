package order

import (
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var (
	// ErrRequestedItemIsNotConstructed is returned when a RequestedItem was not
	// created via NewRequestedItem.
	ErrRequestedItemIsNotConstructed = errs.NewValueIsRequiredError("RequestedItem must be created via NewRequestedItem")

	// ErrConfirmedItemIsNotConstructed is returned when a ConfirmedItem was not
	// created via NewConfirmedItem.
	ErrConfirmedItemIsNotConstructed = errs.NewValueIsRequiredError("ConfirmedItem must be created via NewConfirmedItem")

	// ErrItemAdjustmentIsNotConstructed is returned when an ItemAdjustment was
	// not created via NewItemAdjustment.
	ErrItemAdjustmentIsNotConstructed = errs.NewValueIsRequiredError("ItemAdjustment must be created via NewItemAdjustment")
)

// AvailabilityStatus describes the vendor's verdict on a single line.
type AvailabilityStatus string

const (
	// Available means the item can be fulfilled as requested.
	Available AvailabilityStatus = "available"

	// Unavailable means the item cannot be fulfilled. The line is retained for
	// transparency but excluded from cost computation.
	Unavailable AvailabilityStatus = "unavailable"

	// SubstitutedByVendor means the vendor proposes a replacement product for
	// the requested line.
	SubstitutedByVendor AvailabilityStatus = "substituted_by_vendor"
)

// Validate checks that the availability status is one of the defined values.
func (a AvailabilityStatus) Validate() error {
	switch a {
	case Available, Unavailable, SubstitutedByVendor:
		return nil
	default:
		return errs.NewValueIsInvalidError("availability status is invalid: " + string(a))
	}
}

// String returns the canonical string key of the availability status.
func (a AvailabilityStatus) String() string {
	return string(a)
}

// RequestedItem is one line of the customer's shopping list. The requested
// items form the immutable baseline the vendor negotiates against; they are
// fixed at order creation and never overwritten, so substitutions can be
// displayed side by side with the original request.
type RequestedItem struct {
	itemID                 string
	name                   string
	quantity               int
	unit                   string
	originalEstimatedPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewRequestedItem creates a validated shopping-list line.
func NewRequestedItem(
	itemID string,
	name string,
	quantity int,
	unit string,
	originalEstimatedPrice kernel.Money,
) (RequestedItem, error) {
	if itemID == "" {
		return RequestedItem{}, errs.NewValueIsRequiredError("itemId")
	}
	if name == "" {
		return RequestedItem{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return RequestedItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unit == "" {
		return RequestedItem{}, errs.NewValueIsRequiredError("unit")
	}
	if err := originalEstimatedPrice.Validate(); err != nil {
		return RequestedItem{}, err
	}

	return RequestedItem{
		itemID:                 itemID,
		name:                   name,
		quantity:               quantity,
		unit:                   unit,
		originalEstimatedPrice: originalEstimatedPrice,
		guard:                  guard.NewConstructorGuard(),
	}, nil
}

// ItemID returns the opaque line identifier.
func (i RequestedItem) ItemID() string { return i.itemID }

// Name returns the requested product name.
func (i RequestedItem) Name() string { return i.name }

// Quantity returns the requested quantity.
func (i RequestedItem) Quantity() int { return i.quantity }

// Unit returns the requested measurement unit.
func (i RequestedItem) Unit() string { return i.unit }

// OriginalEstimatedPrice returns the per-unit price estimated by the
// shopping-list producer.
func (i RequestedItem) OriginalEstimatedPrice() kernel.Money { return i.originalEstimatedPrice }

// LineCost returns originalEstimatedPrice multiplied by quantity.
func (i RequestedItem) LineCost() (kernel.Money, error) {
	return i.originalEstimatedPrice.MultiplyBy(i.quantity)
}

// Validate ensures the item was created via NewRequestedItem.
func (i RequestedItem) Validate() error {
	return i.guard.Validate(ErrRequestedItemIsNotConstructed)
}

// ConfirmedItem is one line of the vendor's confirmed set: the requested line
// adjusted for real availability and price, or a genuinely new line the vendor
// introduced. Confirmed items are written once at the confirm transition and
// read-only afterward.
type ConfirmedItem struct {
	itemID         string
	name           string
	quantity       int
	unit           string
	originalPrice  *kernel.Money
	confirmedPrice kernel.Money
	vendorNote     string
	availability   AvailabilityStatus

	guard guard.ConstructorGuard
}

// NewConfirmedItem creates a validated confirmed line. originalPrice is nil
// only for a line the vendor introduced that has no requested counterpart.
func NewConfirmedItem(
	itemID string,
	name string,
	quantity int,
	unit string,
	originalPrice *kernel.Money,
	confirmedPrice kernel.Money,
	vendorNote string,
	availability AvailabilityStatus,
) (ConfirmedItem, error) {
	if itemID == "" {
		return ConfirmedItem{}, errs.NewValueIsRequiredError("itemId")
	}
	if name == "" {
		return ConfirmedItem{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return ConfirmedItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unit == "" {
		return ConfirmedItem{}, errs.NewValueIsRequiredError("unit")
	}
	if originalPrice != nil {
		if err := originalPrice.Validate(); err != nil {
			return ConfirmedItem{}, err
		}
	}
	if err := confirmedPrice.Validate(); err != nil {
		return ConfirmedItem{}, err
	}
	if err := availability.Validate(); err != nil {
		return ConfirmedItem{}, err
	}

	return ConfirmedItem{
		itemID:         itemID,
		name:           name,
		quantity:       quantity,
		unit:           unit,
		originalPrice:  originalPrice,
		confirmedPrice: confirmedPrice,
		vendorNote:     vendorNote,
		availability:   availability,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// ItemID returns the line identifier, matching the requested line unless the
// vendor introduced a new one.
func (i ConfirmedItem) ItemID() string { return i.itemID }

// Name returns the confirmed product name, which differs from the requested
// name for a substitution.
func (i ConfirmedItem) Name() string { return i.name }

// Quantity returns the confirmed quantity.
func (i ConfirmedItem) Quantity() int { return i.quantity }

// Unit returns the measurement unit.
func (i ConfirmedItem) Unit() string { return i.unit }

// OriginalPrice returns the baseline per-unit price, or nil for a
// vendor-introduced line.
func (i ConfirmedItem) OriginalPrice() *kernel.Money { return i.originalPrice }

// ConfirmedPrice returns the per-unit price the vendor committed to.
func (i ConfirmedItem) ConfirmedPrice() kernel.Money { return i.confirmedPrice }

// VendorNote returns the free-text note the vendor attached to the line.
func (i ConfirmedItem) VendorNote() string { return i.vendorNote }

// Availability returns the vendor's verdict on the line.
func (i ConfirmedItem) Availability() AvailabilityStatus { return i.availability }

// CountsTowardTotal reports whether the line participates in cost computation.
// Unavailable lines are retained for transparency but excluded.
func (i ConfirmedItem) CountsTowardTotal() bool {
	return i.availability != Unavailable
}

// LineCost returns confirmedPrice multiplied by quantity.
func (i ConfirmedItem) LineCost() (kernel.Money, error) {
	return i.confirmedPrice.MultiplyBy(i.quantity)
}

// Validate ensures the item was created via NewConfirmedItem.
func (i ConfirmedItem) Validate() error {
	return i.guard.Validate(ErrConfirmedItemIsNotConstructed)
}

// ItemAdjustment is one line of the vendor's adjustment set supplied at the
// confirm transition: an availability verdict, an optional price override and
// an optional note against a requested line, or a wholly new line when ItemID
// has no requested counterpart.
type ItemAdjustment struct {
	itemID         string
	name           string
	quantity       int
	unit           string
	availability   AvailabilityStatus
	confirmedPrice *kernel.Money
	note           string

	guard guard.ConstructorGuard
}

// NewItemAdjustment creates a validated adjustment line.
//
// For adjustments against a requested line, name, quantity and unit may be
// zero values; the baseline fills them in. confirmedPrice nil means the
// original estimated price stands.
func NewItemAdjustment(
	itemID string,
	name string,
	quantity int,
	unit string,
	availability AvailabilityStatus,
	confirmedPrice *kernel.Money,
	note string,
) (ItemAdjustment, error) {
	if itemID == "" {
		return ItemAdjustment{}, errs.NewValueIsRequiredError("itemId")
	}
	if quantity < 0 {
		return ItemAdjustment{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	if err := availability.Validate(); err != nil {
		return ItemAdjustment{}, err
	}
	if confirmedPrice != nil {
		if err := confirmedPrice.Validate(); err != nil {
			return ItemAdjustment{}, err
		}
	}

	return ItemAdjustment{
		itemID:         itemID,
		name:           name,
		quantity:       quantity,
		unit:           unit,
		availability:   availability,
		confirmedPrice: confirmedPrice,
		note:           note,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// ItemID returns the line identifier the adjustment targets.
func (a ItemAdjustment) ItemID() string { return a.itemID }

// Name returns the vendor-supplied name; non-empty for substitutions and new lines.
func (a ItemAdjustment) Name() string { return a.name }

// Quantity returns the vendor-supplied quantity; zero means "as requested".
func (a ItemAdjustment) Quantity() int { return a.quantity }

// Unit returns the vendor-supplied unit; empty means "as requested".
func (a ItemAdjustment) Unit() string { return a.unit }

// Availability returns the vendor's verdict on the line.
func (a ItemAdjustment) Availability() AvailabilityStatus { return a.availability }

// ConfirmedPrice returns the price override, or nil when the baseline price stands.
func (a ItemAdjustment) ConfirmedPrice() *kernel.Money { return a.confirmedPrice }

// Note returns the free-text note for the line.
func (a ItemAdjustment) Note() string { return a.note }

// Validate ensures the adjustment was created via NewItemAdjustment.
func (a ItemAdjustment) Validate() error {
	return a.guard.Validate(ErrItemAdjustmentIsNotConstructed)
}
