package swap

import (
	"bytes"
	"crypto/ed25519"
	"strconv"

	"github.com/mr-tron/base58"
)

// SwapAccount is the on-ledger record for a single swap: who locked the
// funds, who may claim them, the hash-lock, and the refund timelock.
type SwapAccount struct {
	Amount     uint64
	ExpirySlot uint64
	Initiator  ed25519.PublicKey
	Redeemer   ed25519.PublicKey
	SecretHash []byte
}

const SwapAccountSize = (8 + // discriminator
	8 + // amount
	8 + // expiry_slot
	32 + // initiator
	32 + // redeemer
	32) // secret_hash

var swapAccountDiscriminator = anchorDiscriminator("account:SwapAccount")

func (obj *SwapAccount) ToString() string {
	var initiator, redeemer, secretHash string

	if obj.Initiator != nil {
		initiator = base58.Encode(obj.Initiator)
	}
	if obj.Redeemer != nil {
		redeemer = base58.Encode(obj.Redeemer)
	}
	if obj.SecretHash != nil {
		secretHash = base58.Encode(obj.SecretHash)
	}

	return "SwapAccount{" +
		"amount='" + strconv.FormatUint(obj.Amount, 10) + "'" +
		", expiry_slot='" + strconv.FormatUint(obj.ExpirySlot, 10) + "'" +
		", initiator='" + initiator + "'" +
		", redeemer='" + redeemer + "'" +
		", secret_hash='" + secretHash + "'" +
		"}"
}

// Marshal serializes the SwapAccount into its fixed-size account layout.
func (obj *SwapAccount) Marshal() []byte {
	data := make([]byte, SwapAccountSize)

	var offset int

	putDiscriminator(data, swapAccountDiscriminator, &offset)

	putUint64(data, obj.Amount, &offset)
	putUint64(data, obj.ExpirySlot, &offset)
	putKey(data, obj.Initiator, &offset)
	putKey(data, obj.Redeemer, &offset)
	putHash(data, obj.SecretHash, &offset)

	return data
}

// Unmarshal deserializes the SwapAccount from the provided account data.
func (obj *SwapAccount) Unmarshal(data []byte) error {
	if len(data) != SwapAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator []byte

	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, swapAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getUint64(data, &obj.Amount, &offset)
	getUint64(data, &obj.ExpirySlot, &offset)
	getKey(data, &obj.Initiator, &offset)
	getKey(data, &obj.Redeemer, &offset)
	getHash(data, &obj.SecretHash, &offset)

	return nil
}
