package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x742d35Cc6634C0532925a3b844Bc454e4438f44e"))
	assert.True(t, IsValidAddress("0x742d35cc6634c0532925a3b844bc454e4438f44e"))

	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("742d35Cc6634C0532925a3b844Bc454e4438f44e"))
	assert.False(t, IsValidAddress("0x742d35Cc6634C0532925a3b844Bc454e4438f44"))
	assert.False(t, IsValidAddress("0xZZ2d35Cc6634C0532925a3b844Bc9e7595f251e3"))
	assert.False(t, IsValidAddress("ethereum:0x742d35Cc6634C0532925a3b844Bc454e4438f44e"))
}

func TestChecksumAddress(t *testing.T) {
	got, ok := ChecksumAddress("0x742d35cc6634c0532925a3b844bc454e4438f44e")
	require.True(t, ok)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", got)

	_, ok = ChecksumAddress("nope")
	assert.False(t, ok)
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(
		"0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		"0x742d35cc6634c0532925a3b844bc454e4438f44e",
	))
	assert.False(t, SameAddress(
		"0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		"0x1111111111111111111111111111111111111111",
	))
	assert.False(t, SameAddress("garbage", "garbage"))
}
