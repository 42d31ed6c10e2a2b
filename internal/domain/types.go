package domain

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainMonadTestnet    Chain = "eip155:10143"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainMonadTestnet || chain == ChainEthereumSepolia
}

// NumericID returns the numeric chain ID used for transaction signing
func (c Chain) NumericID() *big.Int {
	parts := strings.SplitN(string(c), ":", 2)
	if len(parts) != 2 {
		return nil
	}
	id, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		return nil
	}
	return id
}

// Category represents the prompt category chosen by the creator at mint time
type Category string

const (
	CategoryChatGPT   Category = "ChatGPT"
	CategoryCoding    Category = "Coding"
	CategoryDesign    Category = "Design"
	CategoryMarketing Category = "Marketing"
	CategoryOther     Category = "Other"

	// CategoryAll is the filter sentinel, never stored on-chain
	CategoryAll Category = "All"
)

// Categories lists the mintable categories in display order
func Categories() []Category {
	return []Category{CategoryChatGPT, CategoryCoding, CategoryDesign, CategoryMarketing, CategoryOther}
}

// IsValidCategory checks if a category is mintable
func IsValidCategory(category Category) bool {
	switch category {
	case CategoryChatGPT, CategoryCoding, CategoryDesign, CategoryMarketing, CategoryOther:
		return true
	}
	return false
}

// TokenRecord represents the on-chain state of a single prompt token.
// It is read-only from this system's perspective: records are created by
// mint transactions and mutated only by ledger-side logic.
type TokenRecord struct {
	TokenID     uint64   `json:"token_id"`
	Price       *big.Int `json:"price"` // in wei
	Creator     string   `json:"creator"`
	Owner       string   `json:"owner"`
	Active      bool     `json:"active"`
	Category    Category `json:"category"`
	AvgRating   uint64   `json:"avg_rating"`
	ContentHash string   `json:"content_hash"` // IPFS CID of the metadata blob
}

// MetadataBlob is the off-chain metadata stored on IPFS, addressed by CID
type MetadataBlob struct {
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayRecord is a TokenRecord enriched with off-chain metadata,
// rebuilt fresh on every catalog sync
type DisplayRecord struct {
	TokenRecord
	Title string `json:"title"`
	// Prompt is only populated by an explicit reveal, never during sync
	Prompt string `json:"prompt,omitempty"`
}

// Catalog holds the three role-based views produced by a sync.
// Listings contains active tokens regardless of caller; Owned and Created
// are computed independently against the caller address, so a self-bought
// token appears in both.
type Catalog struct {
	Listings []DisplayRecord `json:"listings"`
	Owned    []DisplayRecord `json:"owned"`
	Created  []DisplayRecord `json:"created"`
}

// IsValidAddress checks if a string is a hex Ethereum address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeAddress normalizes an Ethereum address to its checksummed form
func NormalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// SameAddress compares two addresses case-insensitively.
// The ledger returns checksummed addresses while wallets often submit
// lowercased ones, so equality must ignore case.
func SameAddress(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
