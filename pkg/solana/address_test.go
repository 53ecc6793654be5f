package solana

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgramAddress_SeedLimits(t *testing.T) {
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	tooMany := make([][]byte, maxSeeds+1)
	for i := range tooMany {
		tooMany[i] = []byte{byte(i)}
	}
	_, err = CreateProgramAddress(program, tooMany...)
	assert.Equal(t, ErrTooManySeeds, err)

	_, err = CreateProgramAddress(program, make([]byte, maxSeedLength+1))
	assert.Equal(t, ErrMaxSeedLengthExceeded, err)
}

func TestFindProgramAddress_Deterministic(t *testing.T) {
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	a, bump, err := FindProgramAddressAndBump(program, []byte("state"), []byte{1})
	require.NoError(t, err)
	require.Len(t, []byte(a), ed25519.PublicKeySize)

	b, _, err := FindProgramAddressAndBump(program, []byte("state"), []byte{1})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// The found bump recreates the same address directly.
	c, err := CreateProgramAddress(program, []byte("state"), []byte{1}, []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestFindProgramAddress_DifferentSeeds(t *testing.T) {
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	a, err := FindProgramAddress(program, []byte("state"), []byte{1})
	require.NoError(t, err)

	b, err := FindProgramAddress(program, []byte("state"), []byte{2})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
