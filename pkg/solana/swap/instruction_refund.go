package swap

import (
	"bytes"
	"crypto/ed25519"
)

var refundInstructionDiscriminator = anchorDiscriminator("global:refund")

const RefundInstructionSize = 8 // discriminator

type RefundInstructionAccounts struct {
	SwapAccount ed25519.PublicKey
	Initiator   ed25519.PublicKey
}

func NewRefundInstruction(accounts *RefundInstructionAccounts) Instruction {
	var offset int

	data := make([]byte, len(refundInstructionDiscriminator))
	putDiscriminator(data, refundInstructionDiscriminator, &offset)

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
		},
	}
}

func DecompileRefund(instruction Instruction) (*RefundInstructionAccounts, error) {
	if !bytes.Equal(instruction.Program, PROGRAM_ADDRESS) {
		return nil, ErrInvalidProgram
	}

	if len(instruction.Data) != RefundInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var discriminator []byte

	getDiscriminator(instruction.Data, &discriminator, &offset)
	if !bytes.Equal(discriminator, refundInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	if len(instruction.Accounts) != 2 {
		return nil, ErrInvalidInstructionData
	}

	return &RefundInstructionAccounts{
		SwapAccount: instruction.Accounts[0].PublicKey,
		Initiator:   instruction.Accounts[1].PublicKey,
	}, nil
}
