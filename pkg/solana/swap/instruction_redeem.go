package swap

import (
	"bytes"
	"crypto/ed25519"
)

var redeemInstructionDiscriminator = anchorDiscriminator("global:redeem")

const (
	RedeemInstructionArgsSize = 32 // secret

	RedeemInstructionSize = (8 + // discriminator
		RedeemInstructionArgsSize) // args
)

type RedeemInstructionArgs struct {
	Secret []byte
}

type RedeemInstructionAccounts struct {
	SwapAccount ed25519.PublicKey
	Redeemer    ed25519.PublicKey
}

func NewRedeemInstruction(
	accounts *RedeemInstructionAccounts,
	args *RedeemInstructionArgs,
) Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(redeemInstructionDiscriminator)+
			RedeemInstructionArgsSize)

	putDiscriminator(data, redeemInstructionDiscriminator, &offset)
	putHash(data, args.Secret, &offset)

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
				PublicKey:  accounts.Redeemer,
				IsWritable: true,
				IsSigner:   true,
			},
		},
	}
}

func DecompileRedeem(instruction Instruction) (*RedeemInstructionArgs, *RedeemInstructionAccounts, error) {
	if !bytes.Equal(instruction.Program, PROGRAM_ADDRESS) {
		return nil, nil, ErrInvalidProgram
	}

	if len(instruction.Data) != RedeemInstructionSize {
		return nil, nil, ErrInvalidInstructionData
	}

	var offset int
	var discriminator []byte

	getDiscriminator(instruction.Data, &discriminator, &offset)
	if !bytes.Equal(discriminator, redeemInstructionDiscriminator) {
		return nil, nil, ErrInvalidInstructionData
	}

	if len(instruction.Accounts) != 2 {
		return nil, nil, ErrInvalidInstructionData
	}

	var args RedeemInstructionArgs
	getHash(instruction.Data, &args.Secret, &offset)

	accounts := &RedeemInstructionAccounts{
		SwapAccount: instruction.Accounts[0].PublicKey,
		Redeemer:    instruction.Accounts[1].PublicKey,
	}

	return &args, accounts, nil
}
