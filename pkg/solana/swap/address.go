package swap

import (
	"crypto/ed25519"

	"github.com/hashlock-labs/swap-server/pkg/solana"
)

var swapAccountPrefix = []byte("swap_account")

type GetSwapAccountAddressArgs struct {
	Initiator  ed25519.PublicKey
	SecretHash []byte
}

// GetSwapAccountAddress derives the unique escrow address for the
// (initiator, secretHash) pair. The derivation is a pure function of its
// inputs, so any party can locate a swap's account without ledger access.
//
// Two initiations with the same initiator and secret collide on the same
// address; the program rejects the second while the first is live.
func GetSwapAccountAddress(args *GetSwapAccountAddressArgs) (ed25519.PublicKey, uint8, error) {
	if len(args.SecretHash) != SecretHashSize {
		return nil, 0, ErrInvalidSecretHash
	}

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		swapAccountPrefix,
		args.Initiator,
		args.SecretHash,
	)
}
