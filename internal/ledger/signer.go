package ledger

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/promptfi/prompt-market/internal/domain"
)

// Signer is the capability required to submit ledger transactions.
// It is passed explicitly into every write operation instead of being read
// from ambient state, so write paths are testable with a mock signer.
//
//go:generate mockgen -source=signer.go -destination=../mocks/signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// Address returns the signing account's address
	Address() common.Address

	// TransactOpts returns transaction options bound to the given context
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

type keyedSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chain   domain.Chain
}

// NewKeyedSigner creates a signer from a hex-encoded private key
func NewKeyedSigner(hexKey string, chain domain.Chain) (Signer, error) {
	if !domain.IsValidChain(chain) {
		return nil, fmt.Errorf("unsupported chain: %s", chain)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &keyedSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chain:   chain,
	}, nil
}

func (s *keyedSigner) Address() common.Address {
	return s.address
}

func (s *keyedSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chain.NumericID())
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}
