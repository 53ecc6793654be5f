package escrow

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hashlock-labs/swap-server/pkg/solana/swap"
)

// Execute routes a built swap instruction into the corresponding state
// machine transition. The signer set is taken from the instruction's account
// metas; the surrounding ledger has already verified those signatures by the
// time an instruction reaches the program.
func (p *Processor) Execute(instruction swap.Instruction) error {
	if !bytes.Equal(instruction.Program, swap.PROGRAM_ADDRESS) {
		return swap.ErrInvalidProgram
	}

	signers := signersFromMetas(instruction.Accounts)

	if args, accounts, err := swap.DecompileInitiate(instruction); err == nil {
		derived, _, err := swap.GetSwapAccountAddress(&swap.GetSwapAccountAddressArgs{
			Initiator:  accounts.Initiator,
			SecretHash: args.SecretHash,
		})
		if err != nil {
			return err
		}
		if !bytes.Equal(derived, accounts.SwapAccount) {
			return swap.ErrInvalidInstructionData
		}

		_, err = p.Initiate(&InitiateParams{
			Initiator:      accounts.Initiator,
			Redeemer:       args.Redeemer,
			SecretHash:     args.SecretHash,
			Amount:         args.Amount,
			ExpiresInSlots: args.ExpiresInSlots,
		}, signers...)
		return err
	}

	if args, accounts, err := swap.DecompileRedeem(instruction); err == nil {
		return p.Redeem(accounts.SwapAccount, args.Secret, signers...)
	}

	if accounts, err := swap.DecompileRefund(instruction); err == nil {
		return p.Refund(accounts.SwapAccount, signers...)
	}

	if accounts, err := swap.DecompileInstantRefund(instruction); err == nil {
		return p.InstantRefund(accounts.SwapAccount, signers...)
	}

	return swap.ErrInvalidInstructionData
}

func signersFromMetas(metas []swap.AccountMeta) []ed25519.PublicKey {
	var signers []ed25519.PublicKey
	for _, meta := range metas {
		if meta.IsSigner {
			signers = append(signers, meta.PublicKey)
		}
	}
	return signers
}
