package swap

import (
	"bytes"
	"crypto/ed25519"
)

var initiateInstructionDiscriminator = anchorDiscriminator("global:initiate")

const (
	InitiateInstructionArgsSize = (8 + // amount
		8 + // expires_in_slots
		32 + // redeemer
		32) // secret_hash

	InitiateInstructionSize = (8 + // discriminator
		InitiateInstructionArgsSize) // args
)

type InitiateInstructionArgs struct {
	Amount         uint64
	ExpiresInSlots uint64
	Redeemer       ed25519.PublicKey
	SecretHash     []byte
}

type InitiateInstructionAccounts struct {
	SwapAccount ed25519.PublicKey
	Initiator   ed25519.PublicKey
}

func NewInitiateInstruction(
	accounts *InitiateInstructionAccounts,
	args *InitiateInstructionArgs,
) Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(initiateInstructionDiscriminator)+
			InitiateInstructionArgsSize)

	putDiscriminator(data, initiateInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)
	putUint64(data, args.ExpiresInSlots, &offset)
	putKey(data, args.Redeemer, &offset)
	putHash(data, args.SecretHash, &offset)

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
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func DecompileInitiate(instruction Instruction) (*InitiateInstructionArgs, *InitiateInstructionAccounts, error) {
	if !bytes.Equal(instruction.Program, PROGRAM_ADDRESS) {
		return nil, nil, ErrInvalidProgram
	}

	if len(instruction.Data) != InitiateInstructionSize {
		return nil, nil, ErrInvalidInstructionData
	}

	var offset int
	var discriminator []byte

	getDiscriminator(instruction.Data, &discriminator, &offset)
	if !bytes.Equal(discriminator, initiateInstructionDiscriminator) {
		return nil, nil, ErrInvalidInstructionData
	}

	if len(instruction.Accounts) != 3 {
		return nil, nil, ErrInvalidInstructionData
	}

	var args InitiateInstructionArgs
	getUint64(instruction.Data, &args.Amount, &offset)
	getUint64(instruction.Data, &args.ExpiresInSlots, &offset)
	getKey(instruction.Data, &args.Redeemer, &offset)
	getHash(instruction.Data, &args.SecretHash, &offset)

	accounts := &InitiateInstructionAccounts{
		SwapAccount: instruction.Accounts[0].PublicKey,
		Initiator:   instruction.Accounts[1].PublicKey,
	}

	return &args, accounts, nil
}
