package swap

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashlock-labs/swap-server/pkg/testutil"
)

func TestSwapAccount_RoundTrip(t *testing.T) {
	keys := testutil.GenerateKeys(t, 2)
	secretHash := sha256.Sum256([]byte("the secret"))

	account := &SwapAccount{
		Amount:     100_000_000,
		ExpirySlot: 12345,
		Initiator:  keys[0],
		Redeemer:   keys[1],
		SecretHash: secretHash[:],
	}

	data := account.Marshal()
	require.Len(t, data, SwapAccountSize)

	var unmarshalled SwapAccount
	require.NoError(t, unmarshalled.Unmarshal(data))

	assert.EqualValues(t, account.Amount, unmarshalled.Amount)
	assert.EqualValues(t, account.ExpirySlot, unmarshalled.ExpirySlot)
	assert.Equal(t, []byte(account.Initiator), []byte(unmarshalled.Initiator))
	assert.Equal(t, []byte(account.Redeemer), []byte(unmarshalled.Redeemer))
	assert.Equal(t, account.SecretHash, unmarshalled.SecretHash)
}

func TestSwapAccount_InvalidData(t *testing.T) {
	var account SwapAccount

	assert.Equal(t, ErrInvalidAccountData, account.Unmarshal(make([]byte, SwapAccountSize-1)))

	// Valid size, wrong discriminator
	assert.Equal(t, ErrInvalidAccountData, account.Unmarshal(make([]byte, SwapAccountSize)))
}
