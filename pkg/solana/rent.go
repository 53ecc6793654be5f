package solana

// Rent models the runtime's rent schedule so reserves can be computed without
// an RPC round trip.
//
// Reference: https://github.com/solana-labs/solana/blob/7700cb3128c1f19820de67b81aa45d18f73d2ac0/sdk/program/src/rent.rs
type Rent struct {
	// LamportsPerByteYear is the rental rate in lamports per byte-year.
	LamportsPerByteYear uint64

	// ExemptionThreshold is the number of years of rent an account must
	// hold up front to be exempt from collection. The runtime default is
	// fractional (2.0), but it has always been a whole number in practice,
	// so we keep integer math here.
	ExemptionThreshold uint64
}

const (
	// The runtime charges for a fixed per-account overhead on top of the
	// account's data.
	accountStorageOverhead = 128

	defaultLamportsPerByteYear = ((1_000_000_000 / 100) * 365) / (1024 * 1024)
	defaultExemptionThreshold  = 2
)

// DefaultRent returns the rent schedule with the mainnet default parameters.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: defaultLamportsPerByteYear,
		ExemptionThreshold:  defaultExemptionThreshold,
	}
}

// MinimumBalance returns the minimum lamport balance an account with dataSize
// bytes of data must hold to be exempt from rent collection.
func (r Rent) MinimumBalance(dataSize uint64) uint64 {
	return (accountStorageOverhead + dataSize) * r.LamportsPerByteYear * r.ExemptionThreshold
}
