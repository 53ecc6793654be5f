package swap

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"

	"github.com/hashlock-labs/swap-server/pkg/solana"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrInvalidSecretHash      = errors.New("secret hash must be 32 bytes")
)

var (
	PROGRAM_ADDRESS = solana.MustBase58Decode("2bag6xpshpvPe7SJ9nSDLHpxqhEAoHPGpEkjNSv7gxoF")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(solana.MustBase58Decode("11111111111111111111111111111111"))

	SYSVAR_CLOCK_PUBKEY = ed25519.PublicKey(solana.MustBase58Decode("SysvarC1ock11111111111111111111111111111111"))
)

// SecretSize is the required byte length of the hash-lock preimage.
const SecretSize = 32

// SecretHashSize is the byte length of the stored SHA-256 digest.
const SecretHashSize = sha256.Size

// AccountMeta represents the account information required
// for building transactions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsWritable bool
	IsSigner   bool
}

// Instruction represents a transaction instruction.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}
