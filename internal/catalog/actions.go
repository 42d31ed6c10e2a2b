package catalog

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/domain"
	"github.com/promptfi/prompt-market/internal/ledger"
	"github.com/promptfi/prompt-market/internal/logger"
	"github.com/promptfi/prompt-market/internal/metadatastore"
)

// MintInput is the creator-supplied content for a new prompt token
type MintInput struct {
	Title    string
	Prompt   string
	Category domain.Category
	// Price in wei
	Price *big.Int
}

// MintResult reports a successful mint
type MintResult struct {
	ContentHash string `json:"content_hash"`
	TxHash      string `json:"tx_hash"`
}

// Market executes the marketplace write actions. Each action validates
// locally first, so invalid requests never cost the caller gas.
//
//go:generate mockgen -source=actions.go -destination=../mocks/market.go -package=mocks -mock_names=Market=MockMarket
type Market interface {
	// Mint pins the metadata blob first and only then submits the mint
	// transaction, so the on-chain content hash always points at pinned
	// content. A metadata store failure aborts the mint.
	Mint(ctx context.Context, signer ledger.Signer, input MintInput) (*MintResult, error)

	// Purchase buys a token, attaching payment as the transaction value
	Purchase(ctx context.Context, signer ledger.Signer, tokenID uint64, payment *big.Int) (string, error)

	// Rate submits a 1..5 rating for a token
	Rate(ctx context.Context, signer ledger.Signer, tokenID uint64, score int) (string, error)
}

type market struct {
	ledger   ledger.Client
	metadata metadatastore.Store
	clock    adapter.Clock
}

// NewMarket creates a marketplace action executor
func NewMarket(ledgerClient ledger.Client, metadata metadatastore.Store, clock adapter.Clock) Market {
	return &market{
		ledger:   ledgerClient,
		metadata: metadata,
		clock:    clock,
	}
}

func (m *market) Mint(ctx context.Context, signer ledger.Signer, input MintInput) (*MintResult, error) {
	if err := validateMintInput(input); err != nil {
		return nil, err
	}

	blob := &domain.MetadataBlob{
		Title:     strings.TrimSpace(input.Title),
		Prompt:    input.Prompt,
		Category:  input.Category,
		CreatedAt: m.clock.Now().UTC(),
	}

	contentHash, err := m.metadata.Put(ctx, blob)
	if err != nil {
		// Abort: nothing was submitted to the ledger
		return nil, err
	}

	logger.InfoCtx(ctx, "Metadata pinned",
		zap.String("content_hash", contentHash),
		zap.String("category", string(input.Category)),
	)

	txHash, err := m.ledger.MintPrompt(ctx, signer, contentHash, input.Price, input.Category)
	if err != nil {
		return nil, err
	}

	return &MintResult{
		ContentHash: contentHash,
		TxHash:      txHash,
	}, nil
}

func (m *market) Purchase(ctx context.Context, signer ledger.Signer, tokenID uint64, payment *big.Int) (string, error) {
	if payment == nil || payment.Sign() <= 0 {
		return "", fmt.Errorf("%w: payment must be positive", domain.ErrInvalidInput)
	}

	return m.ledger.BuyPrompt(ctx, signer, tokenID, payment)
}

func (m *market) Rate(ctx context.Context, signer ledger.Signer, tokenID uint64, score int) (string, error) {
	if score < 1 || score > 5 {
		return "", fmt.Errorf("%w: got %d", domain.ErrInvalidRating, score)
	}

	return m.ledger.RatePrompt(ctx, signer, tokenID, uint8(score))
}

func validateMintInput(input MintInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return fmt.Errorf("%w: prompt body is required", domain.ErrInvalidInput)
	}
	if !domain.IsValidCategory(input.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}
	if input.Price == nil || input.Price.Sign() <= 0 {
		return fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}
	return nil
}
