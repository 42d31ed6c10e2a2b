package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptfi/prompt-market/internal/domain"
)

func TestChainNumericID(t *testing.T) {
	tests := []struct {
		name     string
		chain    domain.Chain
		expected *big.Int
	}{
		{
			name:     "monad testnet",
			chain:    domain.ChainMonadTestnet,
			expected: big.NewInt(10143),
		},
		{
			name:     "ethereum sepolia",
			chain:    domain.ChainEthereumSepolia,
			expected: big.NewInt(11155111),
		},
		{
			name:     "malformed chain",
			chain:    domain.Chain("monad"),
			expected: nil,
		},
		{
			name:     "non-numeric reference",
			chain:    domain.Chain("eip155:mainnet"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.chain.NumericID()
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, 0, tt.expected.Cmp(got))
			}
		})
	}
}

func TestIsValidChain(t *testing.T) {
	assert.True(t, domain.IsValidChain(domain.ChainMonadTestnet))
	assert.True(t, domain.IsValidChain(domain.ChainEthereumSepolia))
	assert.False(t, domain.IsValidChain("eip155:1"))
	assert.False(t, domain.IsValidChain(""))
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range domain.Categories() {
		assert.True(t, domain.IsValidCategory(category), string(category))
	}

	// The filter sentinel is not mintable
	assert.False(t, domain.IsValidCategory(domain.CategoryAll))
	assert.False(t, domain.IsValidCategory("Poetry"))
	assert.False(t, domain.IsValidCategory(""))
}

func TestSameAddress(t *testing.T) {
	const checksummed = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	const lowercased = "0xab5801a7d398351b8be11c439e05c5b3259aec9b"

	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{
			name:     "identical",
			a:        checksummed,
			b:        checksummed,
			expected: true,
		},
		{
			name:     "case differs",
			a:        checksummed,
			b:        lowercased,
			expected: true,
		},
		{
			name:     "different addresses",
			a:        checksummed,
			b:        "0x0000000000000000000000000000000000000001",
			expected: false,
		},
		{
			name:     "empty never matches",
			a:        "",
			b:        "",
			expected: false,
		},
		{
			name:     "one side empty",
			a:        checksummed,
			b:        "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.SameAddress(tt.a, tt.b))
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	// Lowercased input comes back checksummed
	assert.Equal(t,
		"0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
		domain.NormalizeAddress("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))

	// Non-address input is left untouched
	assert.Equal(t, "not-an-address", domain.NormalizeAddress("not-an-address"))
	assert.Equal(t, "", domain.NormalizeAddress(""))
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, domain.IsValidAddress("0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"))
	assert.True(t, domain.IsValidAddress("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
	assert.False(t, domain.IsValidAddress("0x123"))
	assert.False(t, domain.IsValidAddress("not-an-address"))
	assert.False(t, domain.IsValidAddress(""))
}
