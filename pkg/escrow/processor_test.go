package escrow

import (
	"crypto/ed25519"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashlock-labs/swap-server/pkg/ledger/memory"
	"github.com/hashlock-labs/swap-server/pkg/solana/swap"
	"github.com/hashlock-labs/swap-server/pkg/testutil"
)

const (
	lamportsPerSol = 1_000_000_000
	swapAmount     = lamportsPerSol / 10
	expiryDuration = 3
)

type testEnv struct {
	ledger    *memory.Ledger
	processor *Processor
	initiator ed25519.PublicKey
	redeemer  ed25519.PublicKey
	secret    []byte
	hash      []byte
}

func setup(t *testing.T) *testEnv {
	keys := testutil.GenerateKeys(t, 2)

	secret := make([]byte, swap.SecretSize)
	hash := sha256.Sum256(secret)

	ledger := memory.NewLedger()
	ledger.Airdrop(keys[0], 2*lamportsPerSol)
	ledger.Airdrop(keys[1], lamportsPerSol)

	return &testEnv{
		ledger:    ledger,
		processor: NewProcessor(ledger),
		initiator: keys[0],
		redeemer:  keys[1],
		secret:    secret,
		hash:      hash[:],
	}
}

func (env *testEnv) initiate(t *testing.T) ed25519.PublicKey {
	address, err := env.processor.Initiate(&InitiateParams{
		Initiator:      env.initiator,
		Redeemer:       env.redeemer,
		SecretHash:     env.hash,
		Amount:         swapAmount,
		ExpiresInSlots: expiryDuration,
	}, env.initiator)
	require.NoError(t, err)
	return address
}

func TestInitiate_BalanceInvariant(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)

	reserve := env.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)
	assert.EqualValues(t, swapAmount, env.ledger.GetBalance(address)-reserve)

	data, exists := env.ledger.GetAccount(address)
	require.True(t, exists)

	var account swap.SwapAccount
	require.NoError(t, account.Unmarshal(data))
	assert.EqualValues(t, swapAmount, account.Amount)
	assert.EqualValues(t, env.ledger.CurrentSlot()+expiryDuration, account.ExpirySlot)
	assert.Equal(t, []byte(env.initiator), []byte(account.Initiator))
	assert.Equal(t, []byte(env.redeemer), []byte(account.Redeemer))
	assert.Equal(t, env.hash, account.SecretHash)
}

func TestInitiate_DerivedAddressMatchesBinding(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)

	derived, _, err := swap.GetSwapAccountAddress(&swap.GetSwapAccountAddressArgs{
		Initiator:  env.initiator,
		SecretHash: env.hash,
	})
	require.NoError(t, err)
	assert.Equal(t, derived, address)
}

func TestInitiate_Collision(t *testing.T) {
	env := setup(t)

	env.initiate(t)

	_, err := env.processor.Initiate(&InitiateParams{
		Initiator:      env.initiator,
		Redeemer:       env.redeemer,
		SecretHash:     env.hash,
		Amount:         swapAmount,
		ExpiresInSlots: expiryDuration,
	}, env.initiator)
	assert.Equal(t, ErrAlreadyLocked, err)
}

func TestInitiate_InsufficientFunds(t *testing.T) {
	env := setup(t)

	_, err := env.processor.Initiate(&InitiateParams{
		Initiator:      env.initiator,
		Redeemer:       env.redeemer,
		SecretHash:     env.hash,
		Amount:         10 * lamportsPerSol,
		ExpiresInSlots: expiryDuration,
	}, env.initiator)
	assert.Equal(t, ErrInsufficientFunds, err)
}

func TestInitiate_Unauthorized(t *testing.T) {
	env := setup(t)

	_, err := env.processor.Initiate(&InitiateParams{
		Initiator:      env.initiator,
		Redeemer:       env.redeemer,
		SecretHash:     env.hash,
		Amount:         swapAmount,
		ExpiresInSlots: expiryDuration,
	}, env.redeemer)
	assert.Equal(t, ErrUnauthorized, err)
}

func TestInitiate_InvalidParams(t *testing.T) {
	env := setup(t)

	_, err := env.processor.Initiate(&InitiateParams{
		Initiator:      env.initiator,
		Redeemer:       env.redeemer,
		SecretHash:     env.hash,
		Amount:         0,
		ExpiresInSlots: expiryDuration,
	}, env.initiator)
	assert.Error(t, err)

	_, err = env.processor.Initiate(&InitiateParams{
		Initiator:      env.initiator,
		Redeemer:       env.redeemer,
		SecretHash:     env.hash,
		Amount:         swapAmount,
		ExpiresInSlots: 0,
	}, env.initiator)
	assert.Error(t, err)

	_, err = env.processor.Initiate(&InitiateParams{
		Initiator:      env.initiator,
		Redeemer:       env.redeemer,
		SecretHash:     env.hash[:16],
		Amount:         swapAmount,
		ExpiresInSlots: expiryDuration,
	}, env.initiator)
	assert.Error(t, err)
}

func TestRedeem_HappyPath(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)

	reserve := env.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)
	redeemerBefore := env.ledger.GetBalance(env.redeemer)

	require.NoError(t, env.processor.Redeem(address, env.secret, env.redeemer))

	// The full balance, rent reserve included, goes to the redeemer.
	assert.EqualValues(t, 0, env.ledger.GetBalance(address))
	assert.EqualValues(t, redeemerBefore+swapAmount+reserve, env.ledger.GetBalance(env.redeemer))
}

func TestRedeem_AfterExpiry(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	env.ledger.AdvanceSlot(expiryDuration + 10)

	// The hash-lock, not the clock, gates redemption.
	require.NoError(t, env.processor.Redeem(address, env.secret, env.redeemer))
	assert.EqualValues(t, 0, env.ledger.GetBalance(address))
}

func TestRedeem_BadSecret(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	balanceBefore := env.ledger.GetBalance(address)

	wrong := make([]byte, swap.SecretSize)
	wrong[0] = 1
	err := env.processor.Redeem(address, wrong, env.redeemer)
	assert.Equal(t, ErrBadSecret, err)

	// Wrong-length preimages fail identically.
	err = env.processor.Redeem(address, env.secret[:16], env.redeemer)
	assert.Equal(t, ErrBadSecret, err)

	assert.EqualValues(t, balanceBefore, env.ledger.GetBalance(address))
}

func TestRedeem_Unauthorized(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)

	err := env.processor.Redeem(address, env.secret, env.initiator)
	assert.Equal(t, ErrUnauthorized, err)

	err = env.processor.Redeem(address, env.secret)
	assert.Equal(t, ErrUnauthorized, err)
}

func TestRefund_BeforeExpiry(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)

	err := env.processor.Refund(address, env.initiator)
	assert.Equal(t, ErrNotYetExpired, err)

	reserve := env.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)
	assert.EqualValues(t, swapAmount+reserve, env.ledger.GetBalance(address))
}

func TestRefund_AfterExpiry(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	initiatorAfterLock := env.ledger.GetBalance(env.initiator)
	reserve := env.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)

	env.ledger.AdvanceSlot(expiryDuration)

	require.NoError(t, env.processor.Refund(address, env.initiator))
	assert.EqualValues(t, 0, env.ledger.GetBalance(address))
	assert.EqualValues(t, initiatorAfterLock+swapAmount+reserve, env.ledger.GetBalance(env.initiator))
}

func TestRefund_ExactlyAtExpiry(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)

	// expirySlot = currentSlot + duration; the gate is >=, so advancing by
	// exactly the duration is sufficient.
	env.ledger.AdvanceSlot(expiryDuration)
	require.NoError(t, env.processor.Refund(address, env.initiator))
}

func TestRefund_Unauthorized(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	env.ledger.AdvanceSlot(expiryDuration)

	err := env.processor.Refund(address, env.redeemer)
	assert.Equal(t, ErrUnauthorized, err)
}

func TestInstantRefund_RequiresBothParties(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)

	err := env.processor.InstantRefund(address, env.initiator)
	assert.Equal(t, ErrUnauthorized, err)

	err = env.processor.InstantRefund(address, env.redeemer)
	assert.Equal(t, ErrUnauthorized, err)

	reserve := env.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)
	assert.EqualValues(t, swapAmount+reserve, env.ledger.GetBalance(address))
}

func TestInstantRefund_BeforeExpiry(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	initiatorAfterLock := env.ledger.GetBalance(env.initiator)
	reserve := env.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)

	// No slot advance: mutual consent bypasses the timelock.
	require.NoError(t, env.processor.InstantRefund(address, env.initiator, env.redeemer))
	assert.EqualValues(t, 0, env.ledger.GetBalance(address))
	assert.EqualValues(t, initiatorAfterLock+swapAmount+reserve, env.ledger.GetBalance(env.initiator))
}

func TestTerminalTransition_SingleUse(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	require.NoError(t, env.processor.Redeem(address, env.secret, env.redeemer))

	env.ledger.AdvanceSlot(expiryDuration)

	assert.Equal(t, ErrInvalidState, env.processor.Redeem(address, env.secret, env.redeemer))
	assert.Equal(t, ErrInvalidState, env.processor.Refund(address, env.initiator))
	assert.Equal(t, ErrInvalidState, env.processor.InstantRefund(address, env.initiator, env.redeemer))
}

func TestReinitiateAfterClose(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	require.NoError(t, env.processor.Redeem(address, env.secret, env.redeemer))

	// The derived address is free again once the previous swap closed.
	again := env.initiate(t)
	assert.Equal(t, address, again)

	reserve := env.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)
	assert.EqualValues(t, swapAmount+reserve, env.ledger.GetBalance(again))
}

// Mirrors the governing end-to-end scenario: lock 0.1 SOL behind the digest
// of a zero-filled secret, redeem, re-initiate and refund after expiry, then
// re-initiate and cancel by mutual consent before expiry.
func TestFullSwapLifecycles(t *testing.T) {
	env := setup(t)

	address := env.initiate(t)
	require.NoError(t, env.processor.Redeem(address, env.secret, env.redeemer))
	assert.EqualValues(t, 0, env.ledger.GetBalance(address))

	address = env.initiate(t)
	env.ledger.AdvanceSlot(expiryDuration)
	require.NoError(t, env.processor.Refund(address, env.initiator))
	assert.EqualValues(t, 0, env.ledger.GetBalance(address))

	address = env.initiate(t)
	require.NoError(t, env.processor.InstantRefund(address, env.initiator, env.redeemer))
	assert.EqualValues(t, 0, env.ledger.GetBalance(address))
}
