package escrow

import "crypto/ed25519"

// Ledger is the collaborator surface the escrow state machine needs from the
// surrounding ledger. Implementations must apply each method atomically; the
// processor validates every precondition before mutating so a sequence of
// calls within one operation cannot partially fail.
//
// Signature verification is not part of this interface. The ledger verifies
// transaction signatures before an operation reaches the processor, and the
// processor receives the verified signer set with each call.
type Ledger interface {
	// CurrentSlot returns the ledger's monotonically non-decreasing logical
	// clock.
	CurrentSlot() uint64

	// MinimumBalanceForRentExemption returns the reserve an account with the
	// given data size must hold to persist.
	MinimumBalanceForRentExemption(size uint64) uint64

	// GetBalance returns the lamport balance of the account, or zero if the
	// account does not exist.
	GetBalance(address ed25519.PublicKey) uint64

	// GetAccount returns the account's data, or false if no account exists
	// at the address.
	GetAccount(address ed25519.PublicKey) ([]byte, bool)

	// CreateAccount allocates a new account at the address, owned by owner,
	// funded with lamports taken from the funder.
	CreateAccount(funder, address, owner ed25519.PublicKey, size, lamports uint64) error

	// SetAccountData replaces the account's data.
	SetAccountData(address ed25519.PublicKey, data []byte) error

	// Transfer moves lamports between accounts.
	Transfer(from, to ed25519.PublicKey, lamports uint64) error

	// CloseAccount transfers the account's entire balance, rent reserve
	// included, to the destination and removes the account.
	CloseAccount(address, destination ed25519.PublicKey) error
}
