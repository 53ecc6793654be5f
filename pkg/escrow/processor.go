package escrow

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hashlock-labs/swap-server/pkg/solana/swap"
)

// Processor executes the four escrow operations against a Ledger. It holds no
// swap state of its own; every swap is a self-contained record at its derived
// address and the account's on-ledger content drives the lifecycle.
type Processor struct {
	log    *logrus.Entry
	ledger Ledger
}

func NewProcessor(ledger Ledger) *Processor {
	return &Processor{
		log:    logrus.StandardLogger().WithField("type", "escrow/processor"),
		ledger: ledger,
	}
}

// InitiateParams are the public inputs that define a swap. The derived
// address is a pure function of the initiator and secret hash.
type InitiateParams struct {
	Initiator      ed25519.PublicKey
	Redeemer       ed25519.PublicKey
	SecretHash     []byte
	Amount         uint64
	ExpiresInSlots uint64
}

// Initiate allocates the swap account at its derived address and locks
// amount plus the rent-exempt reserve inside it. Valid only while no live
// swap occupies the address.
func (p *Processor) Initiate(params *InitiateParams, signers ...ed25519.PublicKey) (ed25519.PublicKey, error) {
	log := p.log.WithField("method", "Initiate")

	if params.Amount == 0 {
		return nil, errors.New("amount must be positive")
	}
	if params.ExpiresInSlots == 0 {
		return nil, errors.New("expiry duration must be positive")
	}
	if len(params.Redeemer) != ed25519.PublicKeySize {
		return nil, errors.New("invalid redeemer")
	}
	if len(params.SecretHash) != swap.SecretHashSize {
		return nil, swap.ErrInvalidSecretHash
	}

	if err := requireSigners(signers, params.Initiator); err != nil {
		return nil, err
	}

	address, _, err := swap.GetSwapAccountAddress(&swap.GetSwapAccountAddressArgs{
		Initiator:  params.Initiator,
		SecretHash: params.SecretHash,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive swap account address")
	}
	log = log.WithField("swap_account", base58.Encode(address))

	if _, exists := p.ledger.GetAccount(address); exists {
		return nil, ErrAlreadyLocked
	}

	reserve := p.ledger.MinimumBalanceForRentExemption(swap.SwapAccountSize)
	if p.ledger.GetBalance(params.Initiator) < params.Amount+reserve {
		return nil, ErrInsufficientFunds
	}

	account := &swap.SwapAccount{
		Amount:     params.Amount,
		ExpirySlot: p.ledger.CurrentSlot() + params.ExpiresInSlots,
		Initiator:  params.Initiator,
		Redeemer:   params.Redeemer,
		SecretHash: params.SecretHash,
	}

	if err := p.ledger.CreateAccount(params.Initiator, address, swap.PROGRAM_ID, swap.SwapAccountSize, reserve); err != nil {
		return nil, errors.Wrap(err, "failed to create swap account")
	}
	if err := p.ledger.SetAccountData(address, account.Marshal()); err != nil {
		return nil, errors.Wrap(err, "failed to write swap account data")
	}
	if err := p.ledger.Transfer(params.Initiator, address, params.Amount); err != nil {
		return nil, errors.Wrap(err, "failed to fund swap account")
	}

	log.WithFields(logrus.Fields{
		"amount":      params.Amount,
		"expiry_slot": account.ExpirySlot,
	}).Debug("swap initiated")

	return address, nil
}

// Redeem pays the swap account's entire balance, rent reserve included, to
// the redeemer in exchange for the hash-lock preimage. Redemption is never
// time-gated: the hash-lock, not the clock, gates this path.
func (p *Processor) Redeem(address ed25519.PublicKey, secret []byte, signers ...ed25519.PublicKey) error {
	log := p.log.WithFields(logrus.Fields{
		"method":       "Redeem",
		"swap_account": base58.Encode(address),
	})

	account, err := p.loadLockedSwap(address)
	if err != nil {
		return err
	}

	if err := requireSigners(signers, account.Redeemer); err != nil {
		return err
	}

	if !secretMatches(secret, account.SecretHash) {
		return ErrBadSecret
	}

	if err := p.ledger.CloseAccount(address, account.Redeemer); err != nil {
		return errors.Wrap(err, "failed to close swap account")
	}

	log.Debug("swap redeemed")
	return nil
}

// Refund returns the swap account's entire balance to the initiator once the
// expiry slot has been reached.
func (p *Processor) Refund(address ed25519.PublicKey, signers ...ed25519.PublicKey) error {
	log := p.log.WithFields(logrus.Fields{
		"method":       "Refund",
		"swap_account": base58.Encode(address),
	})

	account, err := p.loadLockedSwap(address)
	if err != nil {
		return err
	}

	if err := requireSigners(signers, account.Initiator); err != nil {
		return err
	}

	if p.ledger.CurrentSlot() < account.ExpirySlot {
		return ErrNotYetExpired
	}

	if err := p.ledger.CloseAccount(address, account.Initiator); err != nil {
		return errors.Wrap(err, "failed to close swap account")
	}

	log.Debug("swap refunded")
	return nil
}

// InstantRefund cancels the swap before expiry and returns the entire
// balance to the initiator. Requires consent from both parties.
func (p *Processor) InstantRefund(address ed25519.PublicKey, signers ...ed25519.PublicKey) error {
	log := p.log.WithFields(logrus.Fields{
		"method":       "InstantRefund",
		"swap_account": base58.Encode(address),
	})

	account, err := p.loadLockedSwap(address)
	if err != nil {
		return err
	}

	if err := requireSigners(signers, account.Initiator, account.Redeemer); err != nil {
		return err
	}

	if err := p.ledger.CloseAccount(address, account.Initiator); err != nil {
		return errors.Wrap(err, "failed to close swap account")
	}

	log.Debug("swap cancelled by mutual consent")
	return nil
}

// loadLockedSwap loads and validates the swap record at the address. Any
// account that is missing, malformed, or already drained fails the Locked
// precondition.
func (p *Processor) loadLockedSwap(address ed25519.PublicKey) (*swap.SwapAccount, error) {
	data, exists := p.ledger.GetAccount(address)
	if !exists {
		return nil, ErrInvalidState
	}

	var account swap.SwapAccount
	if err := account.Unmarshal(data); err != nil {
		return nil, ErrInvalidState
	}

	if p.ledger.GetBalance(address) == 0 {
		return nil, ErrInvalidState
	}

	return &account, nil
}

// requireSigners enforces an operation's required signer set. Every required
// identity must appear in the verified signer list.
func requireSigners(signers []ed25519.PublicKey, required ...ed25519.PublicKey) error {
	for _, r := range required {
		var found bool
		for _, s := range signers {
			if bytes.Equal(s, r) {
				found = true
				break
			}
		}
		if !found {
			return ErrUnauthorized
		}
	}
	return nil
}

// secretMatches re-hashes the presented preimage and compares it against the
// stored digest. Length and content mismatches are indistinguishable.
func secretMatches(secret, secretHash []byte) bool {
	if len(secret) != swap.SecretSize {
		return false
	}

	digest := sha256.Sum256(secret)
	return subtle.ConstantTimeCompare(digest[:], secretHash) == 1
}
