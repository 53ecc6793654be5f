// Package memory provides an in-memory ledger implementing the escrow
// collaborator interface: accounts, lamport balances, a slot clock, and the
// rent schedule. It backs the end-to-end protocol tests and serializes all
// operations, standing in for the ledger's per-account exclusivity.
package memory

import (
	"crypto/ed25519"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/hashlock-labs/swap-server/pkg/solana"
)

var (
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type account struct {
	lamports uint64
	data     []byte
	owner    ed25519.PublicKey
}

type Ledger struct {
	mu       sync.Mutex
	slot     uint64
	rent     solana.Rent
	accounts map[string]*account
}

func NewLedger() *Ledger {
	return &Ledger{
		slot:     1,
		rent:     solana.DefaultRent(),
		accounts: make(map[string]*account),
	}
}

// Airdrop credits lamports to an address, creating a system account if none
// exists. Test funding only; a real ledger does this through the faucet.
func (l *Ledger) Airdrop(address ed25519.PublicKey, lamports uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[base58.Encode(address)]
	if !ok {
		acc = &account{}
		l.accounts[base58.Encode(address)] = acc
	}
	acc.lamports += lamports
}

// AdvanceSlot moves the logical clock forward. The clock never moves
// backwards.
func (l *Ledger) AdvanceSlot(slots uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.slot += slots
}

func (l *Ledger) CurrentSlot() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.slot
}

func (l *Ledger) MinimumBalanceForRentExemption(size uint64) uint64 {
	return l.rent.MinimumBalance(size)
}

func (l *Ledger) GetBalance(address ed25519.PublicKey) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[base58.Encode(address)]
	if !ok {
		return 0
	}
	return acc.lamports
}

func (l *Ledger) GetAccount(address ed25519.PublicKey) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[base58.Encode(address)]
	if !ok || acc.data == nil {
		return nil, false
	}

	data := make([]byte, len(acc.data))
	copy(data, acc.data)
	return data, true
}

func (l *Ledger) CreateAccount(funder, address, owner ed25519.PublicKey, size, lamports uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[base58.Encode(address)]
	if ok && acc.data != nil {
		return ErrAccountExists
	}

	from, ok := l.accounts[base58.Encode(funder)]
	if !ok {
		return ErrAccountNotFound
	}
	if from.lamports < lamports {
		return ErrInsufficientFunds
	}

	from.lamports -= lamports

	if acc == nil {
		acc = &account{}
		l.accounts[base58.Encode(address)] = acc
	}
	acc.lamports += lamports
	acc.data = make([]byte, size)
	acc.owner = owner

	return nil
}

func (l *Ledger) SetAccountData(address ed25519.PublicKey, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[base58.Encode(address)]
	if !ok || acc.data == nil {
		return ErrAccountNotFound
	}
	if len(data) != len(acc.data) {
		return errors.Errorf("account data size mismatch: %d != %d", len(data), len(acc.data))
	}

	copy(acc.data, data)
	return nil
}

func (l *Ledger) Transfer(from, to ed25519.PublicKey, lamports uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.accounts[base58.Encode(from)]
	if !ok {
		return ErrAccountNotFound
	}
	if src.lamports < lamports {
		return ErrInsufficientFunds
	}

	dst, ok := l.accounts[base58.Encode(to)]
	if !ok {
		dst = &account{}
		l.accounts[base58.Encode(to)] = dst
	}

	src.lamports -= lamports
	dst.lamports += lamports
	return nil
}

func (l *Ledger) CloseAccount(address, destination ed25519.PublicKey) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[base58.Encode(address)]
	if !ok {
		return ErrAccountNotFound
	}

	dst, ok := l.accounts[base58.Encode(destination)]
	if !ok {
		dst = &account{}
		l.accounts[base58.Encode(destination)] = dst
	}

	dst.lamports += acc.lamports
	delete(l.accounts, base58.Encode(address))
	return nil
}
