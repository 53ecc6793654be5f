package escrow

import "github.com/pkg/errors"

// Every failure aborts the whole operation with no partial state mutation.
// All of these are recoverable from the caller's perspective; none are
// retried internally.
var (
	// ErrAlreadyLocked is returned when initiating while a live swap already
	// occupies the derived address.
	ErrAlreadyLocked = errors.New("swap account is already locked")

	// ErrInsufficientFunds is returned when the initiator cannot cover the
	// swap amount plus the rent-exempt reserve.
	ErrInsufficientFunds = errors.New("initiator cannot fund amount and rent reserve")

	// ErrBadSecret is returned on any hash-lock mismatch. Wrong length and
	// wrong content are indistinguishable to avoid an oracle.
	ErrBadSecret = errors.New("secret does not match the stored hash")

	// ErrUnauthorized is returned when a required signer is missing.
	ErrUnauthorized = errors.New("missing required signer")

	// ErrNotYetExpired is returned on a unilateral refund before the expiry
	// slot.
	ErrNotYetExpired = errors.New("refund attempted before expiry")

	// ErrInvalidState is returned when the swap account is not in the state
	// the operation requires, e.g. a second terminal transition.
	ErrInvalidState = errors.New("swap account is not in the required state")
)
