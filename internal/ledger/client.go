package ledger

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/domain"
	"github.com/promptfi/prompt-market/internal/logger"
)

// Client wraps the deployed PromptFi contract.
// Read methods wrap their failures in the domain error taxonomy so callers
// can partition terminal from per-token failures; write methods submit a
// signed transaction and block until it is mined.
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// ListTokenIDs enumerates every token id the ledger knows about.
	// Failure wraps domain.ErrLedgerUnavailable.
	ListTokenIDs(ctx context.Context) ([]uint64, error)

	// GetTokenRecord fetches the on-chain record for a single token.
	// Failure wraps domain.ErrTokenFetch.
	GetTokenRecord(ctx context.Context, tokenID uint64) (*domain.TokenRecord, error)

	// GetOwner fetches the current owner of a token.
	// Failure wraps domain.ErrTokenFetch.
	GetOwner(ctx context.Context, tokenID uint64) (string, error)

	// RevealContentHash calls the owner-gated revealPrompt view and returns
	// the content hash of the token's metadata blob
	RevealContentHash(ctx context.Context, tokenID uint64) (string, error)

	// MintPrompt submits createPrompt and awaits confirmation.
	// Failure wraps domain.ErrLedgerWrite.
	MintPrompt(ctx context.Context, signer Signer, contentHash string, price *big.Int, category domain.Category) (string, error)

	// BuyPrompt submits the payable buyPrompt with exactly payment attached
	// and awaits confirmation. Failure wraps domain.ErrLedgerWrite.
	BuyPrompt(ctx context.Context, signer Signer, tokenID uint64, payment *big.Int) (string, error)

	// RatePrompt submits ratePrompt and awaits confirmation.
	// Failure wraps domain.ErrLedgerWrite.
	RatePrompt(ctx context.Context, signer Signer, tokenID uint64, score uint8) (string, error)

	// Close closes the underlying connection
	Close()
}

type client struct {
	chainID         domain.Chain
	contractAddress common.Address
	contractABI     abi.ABI
	eth             adapter.EthClient
	backend         adapter.ChainBackend
	bound           *bind.BoundContract
}

// NewClient creates a ledger client for the PromptFi contract at contractAddress.
// eth serves the read path; backend serves signed writes. Both usually point
// at the same node.
func NewClient(chainID domain.Chain, contractAddress string, eth adapter.EthClient, backend adapter.ChainBackend) (Client, error) {
	parsedABI, err := abi.JSON(strings.NewReader(PromptFiABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PromptFi ABI: %w", err)
	}

	addr := common.HexToAddress(contractAddress)
	var bound *bind.BoundContract
	if backend != nil {
		bound = bind.NewBoundContract(addr, parsedABI, backend, backend, backend)
	}

	return &client{
		chainID:         chainID,
		contractAddress: addr,
		contractABI:     parsedABI,
		eth:             eth,
		backend:         backend,
		bound:           bound,
	}, nil
}

// call packs a view method, executes it and returns the raw return data
func (c *client) call(ctx context.Context, method string, args ...interface{}) ([]byte, error) {
	data, err := c.contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &c.contractAddress,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return result, nil
}

func (c *client) ListTokenIDs(ctx context.Context) ([]uint64, error) {
	result, err := c.call(ctx, "getAllPrompts")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLedgerUnavailable, err)
	}

	var ids []*big.Int
	if err := c.contractABI.UnpackIntoInterface(&ids, "getAllPrompts", result); err != nil {
		return nil, fmt.Errorf("%w: failed to unpack getAllPrompts: %w", domain.ErrLedgerUnavailable, err)
	}

	tokenIDs := make([]uint64, 0, len(ids))
	for _, id := range ids {
		tokenIDs = append(tokenIDs, id.Uint64())
	}
	return tokenIDs, nil
}

func (c *client) GetTokenRecord(ctx context.Context, tokenID uint64) (*domain.TokenRecord, error) {
	result, err := c.call(ctx, "getPromptDetails", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, fmt.Errorf("%w: token %d: %w", domain.ErrTokenFetch, tokenID, err)
	}

	var details struct {
		Price     *big.Int
		Creator   common.Address
		Active    bool
		Category  string
		AvgRating *big.Int
		IpfsHash  string
	}
	if err := c.contractABI.UnpackIntoInterface(&details, "getPromptDetails", result); err != nil {
		return nil, fmt.Errorf("%w: token %d: failed to unpack: %w", domain.ErrTokenFetch, tokenID, err)
	}

	return &domain.TokenRecord{
		TokenID:     tokenID,
		Price:       details.Price,
		Creator:     details.Creator.Hex(),
		Active:      details.Active,
		Category:    domain.Category(details.Category),
		AvgRating:   details.AvgRating.Uint64(),
		ContentHash: details.IpfsHash,
	}, nil
}

func (c *client) GetOwner(ctx context.Context, tokenID uint64) (string, error) {
	result, err := c.call(ctx, "ownerOf", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", fmt.Errorf("%w: token %d: %w", domain.ErrTokenFetch, tokenID, err)
	}

	var owner common.Address
	if err := c.contractABI.UnpackIntoInterface(&owner, "ownerOf", result); err != nil {
		return "", fmt.Errorf("%w: token %d: failed to unpack ownerOf: %w", domain.ErrTokenFetch, tokenID, err)
	}

	return owner.Hex(), nil
}

func (c *client) RevealContentHash(ctx context.Context, tokenID uint64) (string, error) {
	result, err := c.call(ctx, "revealPrompt", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", fmt.Errorf("%w: token %d: %w", domain.ErrTokenFetch, tokenID, err)
	}

	var contentHash string
	if err := c.contractABI.UnpackIntoInterface(&contentHash, "revealPrompt", result); err != nil {
		return "", fmt.Errorf("%w: token %d: failed to unpack revealPrompt: %w", domain.ErrTokenFetch, tokenID, err)
	}

	return contentHash, nil
}

func (c *client) MintPrompt(ctx context.Context, signer Signer, contentHash string, price *big.Int, category domain.Category) (string, error) {
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrLedgerWrite, err)
	}

	tx, err := c.bound.Transact(opts, "createPrompt", contentHash, price, string(category))
	if err != nil {
		return "", fmt.Errorf("%w: createPrompt: %s", domain.ErrLedgerWrite, revertReason(err))
	}

	return c.awaitReceipt(ctx, tx, "createPrompt")
}

func (c *client) BuyPrompt(ctx context.Context, signer Signer, tokenID uint64, payment *big.Int) (string, error) {
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrLedgerWrite, err)
	}
	opts.Value = payment

	tx, err := c.bound.Transact(opts, "buyPrompt", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", fmt.Errorf("%w: buyPrompt: %s", domain.ErrLedgerWrite, revertReason(err))
	}

	return c.awaitReceipt(ctx, tx, "buyPrompt")
}

func (c *client) RatePrompt(ctx context.Context, signer Signer, tokenID uint64, score uint8) (string, error) {
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrLedgerWrite, err)
	}

	tx, err := c.bound.Transact(opts, "ratePrompt", new(big.Int).SetUint64(tokenID), new(big.Int).SetUint64(uint64(score)))
	if err != nil {
		return "", fmt.Errorf("%w: ratePrompt: %s", domain.ErrLedgerWrite, revertReason(err))
	}

	return c.awaitReceipt(ctx, tx, "ratePrompt")
}

// awaitReceipt blocks until the transaction is mined and verifies it succeeded.
// A submitted transaction cannot be cancelled; the caller can only wait or
// observe failure.
func (c *client) awaitReceipt(ctx context.Context, tx *types.Transaction, method string) (string, error) {
	logger.InfoCtx(ctx, "Awaiting transaction confirmation",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
	)

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return "", fmt.Errorf("%w: %s: waiting for receipt: %w", domain.ErrLedgerWrite, method, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%w: %s: transaction %s reverted", domain.ErrLedgerWrite, method, tx.Hash().Hex())
	}

	logger.InfoCtx(ctx, "Transaction confirmed",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
	)

	return tx.Hash().Hex(), nil
}

// revertReason extracts the human-readable revert reason from a node error.
// Nodes prefix reasons with "execution reverted:"; the prefix is noise for
// callers rendering the message.
func revertReason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if idx := strings.Index(msg, "execution reverted:"); idx >= 0 {
		return strings.TrimSpace(msg[idx+len("execution reverted:"):])
	}
	return msg
}

func (c *client) Close() {
	c.eth.Close()
}
