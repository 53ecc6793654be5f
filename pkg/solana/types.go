package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// Signature is a transaction signature.
type Signature [64]byte

func (s Signature) ToBase58() string {
	return base58.Encode(s[:])
}

// AccountInfo contains the Solana account information for an address.
type AccountInfo struct {
	Data       []byte
	Owner      ed25519.PublicKey
	Lamports   uint64
	Executable bool
}

// Commitment is the commitment level for an RPC query.
type Commitment struct {
	Commitment string `json:"commitment"`
}

var (
	CommitmentProcessed = Commitment{Commitment: "processed"}
	CommitmentConfirmed = Commitment{Commitment: "confirmed"}
	CommitmentFinalized = Commitment{Commitment: "finalized"}
)

func MustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
