package order

import "grocery/internal/pkg/errs"

// Role identifies the kind of actor initiating a transition. Transitions are
// actor-gated; the role is recorded on every history entry.
type Role string

const (
	// RoleCustomer is the customer who placed the order.
	RoleCustomer Role = "customer"

	// RoleVendor is the vendor who shops and fulfills the order.
	RoleVendor Role = "vendor"

	// RoleAdmin is an administrator using the override path.
	RoleAdmin Role = "admin"

	// RoleSystem marks entries produced by the workflow itself, such as the
	// initial history entry written at order creation.
	RoleSystem Role = "system"
)

// Validate checks that the role is one of the defined actor kinds.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin, RoleSystem:
		return nil
	default:
		return errs.NewValueIsInvalidError("role is invalid: " + string(r))
	}
}

// String returns the canonical string key of the role.
func (r Role) String() string {
	return string(r)
}
