package swap

import (
	"bytes"

	"github.com/hashlock-labs/swap-server/pkg/solana"
)

// SwapState classifies the lifecycle of a swap account. The account's
// existence and balance is the state; there is no status field on the ledger
// to desynchronize.
type SwapState uint8

const (
	StateUnknown SwapState = iota
	StateLocked
	StateClosed
)

func (s SwapState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateLocked:
		return "locked"
	case StateClosed:
		return "closed"
	}

	return "unknown"
}

// StateFromAccountInfo classifies a swap account from a raw getAccountInfo
// response. A missing account (solana.ErrNoAccountInfo from the client) means
// the swap was either never initiated or already closed; callers that know
// the swap existed should treat that as StateClosed.
func StateFromAccountInfo(info solana.AccountInfo) (SwapState, *SwapAccount, error) {
	if !bytes.Equal(info.Owner, PROGRAM_ID) {
		return StateUnknown, nil, ErrInvalidProgram
	}

	var account SwapAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return StateUnknown, nil, err
	}

	if info.Lamports == 0 {
		return StateClosed, &account, nil
	}

	return StateLocked, &account, nil
}
