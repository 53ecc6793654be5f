package swap

import (
	"bytes"
	"crypto/ed25519"
)

var instantRefundInstructionDiscriminator = anchorDiscriminator("global:instant_refund")

const InstantRefundInstructionSize = 8 // discriminator

type InstantRefundInstructionAccounts struct {
	SwapAccount ed25519.PublicKey
	Initiator   ed25519.PublicKey
	Redeemer    ed25519.PublicKey
}

// NewInstantRefundInstruction builds the mutual-consent early cancellation.
// Both the initiator and the redeemer sign, so neither party can bypass the
// other's guarantee unilaterally.
func NewInstantRefundInstruction(accounts *InstantRefundInstructionAccounts) Instruction {
	var offset int

	data := make([]byte, len(instantRefundInstructionDiscriminator))
	putDiscriminator(data, instantRefundInstructionDiscriminator, &offset)

	return Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []AccountMeta{
			{
				PublicKey:  accounts.SwapAccount,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Initiator,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Redeemer,
				IsWritable: false,
				IsSigner:   true,
			},
		},
	}
}

func DecompileInstantRefund(instruction Instruction) (*InstantRefundInstructionAccounts, error) {
	if !bytes.Equal(instruction.Program, PROGRAM_ADDRESS) {
		return nil, ErrInvalidProgram
	}

	if len(instruction.Data) != InstantRefundInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var discriminator []byte

	getDiscriminator(instruction.Data, &discriminator, &offset)
	if !bytes.Equal(discriminator, instantRefundInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	if len(instruction.Accounts) != 3 {
		return nil, ErrInvalidInstructionData
	}

	return &InstantRefundInstructionAccounts{
		SwapAccount: instruction.Accounts[0].PublicKey,
		Initiator:   instruction.Accounts[1].PublicKey,
		Redeemer:    instruction.Accounts[2].PublicKey,
	}, nil
}
