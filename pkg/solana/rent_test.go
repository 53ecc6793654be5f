package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentMinimumBalance(t *testing.T) {
	rent := DefaultRent()

	// (128 overhead + 120 data) * 3480 lamports/byte-year * 2 years
	assert.EqualValues(t, 1_726_080, rent.MinimumBalance(120))

	assert.True(t, rent.MinimumBalance(0) > 0)
	assert.True(t, rent.MinimumBalance(200) > rent.MinimumBalance(100))
}
