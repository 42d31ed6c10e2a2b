package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptfi/prompt-market/internal/domain"
	"github.com/promptfi/prompt-market/internal/ledger"
	"github.com/promptfi/prompt-market/internal/logger"
	"github.com/promptfi/prompt-market/internal/mocks"
)

const (
	contractAddress = "0x1234567890AbcdEF1234567890aBcdef12345678"
	creatorAddress  = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func addressOf(s string) common.Address {
	return common.HexToAddress(s)
}

func setupClientTest(t *testing.T) (ledger.Client, *mocks.MockEthClient, abi.ABI) {
	ctrl := gomock.NewController(t)
	mockEth := mocks.NewMockEthClient(ctrl)

	client, err := ledger.NewClient(domain.ChainMonadTestnet, contractAddress, mockEth, nil)
	require.NoError(t, err)

	parsedABI, err := abi.JSON(strings.NewReader(ledger.PromptFiABI))
	require.NoError(t, err)

	return client, mockEth, parsedABI
}

func TestListTokenIDs(t *testing.T) {
	t.Run("unpacks the token id list", func(t *testing.T) {
		client, mockEth, parsedABI := setupClientTest(t)
		ctx := context.Background()

		returnData, err := parsedABI.Methods["getAllPrompts"].Outputs.Pack(
			[]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(5)},
		)
		require.NoError(t, err)

		mockEth.EXPECT().
			CallContract(ctx, gomock.Any(), gomock.Nil()).
			Return(returnData, nil)

		ids, err := client.ListTokenIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 2, 5}, ids)
	})

	t.Run("call failure wraps ledger unavailable", func(t *testing.T) {
		client, mockEth, _ := setupClientTest(t)
		ctx := context.Background()

		mockEth.EXPECT().
			CallContract(ctx, gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("connection refused"))

		ids, err := client.ListTokenIDs(ctx)
		assert.Nil(t, ids)
		assert.True(t, errors.Is(err, domain.ErrLedgerUnavailable))
	})

	t.Run("empty ledger yields empty list", func(t *testing.T) {
		client, mockEth, parsedABI := setupClientTest(t)
		ctx := context.Background()

		returnData, err := parsedABI.Methods["getAllPrompts"].Outputs.Pack([]*big.Int{})
		require.NoError(t, err)

		mockEth.EXPECT().
			CallContract(ctx, gomock.Any(), gomock.Nil()).
			Return(returnData, nil)

		ids, err := client.ListTokenIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestGetTokenRecord(t *testing.T) {
	t.Run("unpacks every on-chain field", func(t *testing.T) {
		client, mockEth, parsedABI := setupClientTest(t)
		ctx := context.Background()

		returnData, err := parsedABI.Methods["getPromptDetails"].Outputs.Pack(
			big.NewInt(1_000_000),
			addressOf(creatorAddress),
			true,
			"Coding",
			big.NewInt(4),
			"QmHash",
		)
		require.NoError(t, err)

		mockEth.EXPECT().
			CallContract(ctx, gomock.Any(), gomock.Nil()).
			Return(returnData, nil)

		record, err := client.GetTokenRecord(ctx, 7)
		require.NoError(t, err)

		assert.Equal(t, uint64(7), record.TokenID)
		assert.Equal(t, 0, big.NewInt(1_000_000).Cmp(record.Price))
		assert.Equal(t, creatorAddress, record.Creator)
		assert.True(t, record.Active)
		assert.Equal(t, domain.CategoryCoding, record.Category)
		assert.Equal(t, uint64(4), record.AvgRating)
		assert.Equal(t, "QmHash", record.ContentHash)
	})

	t.Run("call failure wraps token fetch", func(t *testing.T) {
		client, mockEth, _ := setupClientTest(t)
		ctx := context.Background()

		mockEth.EXPECT().
			CallContract(ctx, gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("execution reverted"))

		record, err := client.GetTokenRecord(ctx, 7)
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, domain.ErrTokenFetch))
	})
}

func TestGetOwner(t *testing.T) {
	t.Run("returns the checksummed owner", func(t *testing.T) {
		client, mockEth, parsedABI := setupClientTest(t)
		ctx := context.Background()

		returnData, err := parsedABI.Methods["ownerOf"].Outputs.Pack(addressOf(creatorAddress))
		require.NoError(t, err)

		mockEth.EXPECT().
			CallContract(ctx, gomock.Any(), gomock.Nil()).
			Return(returnData, nil)

		owner, err := client.GetOwner(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, creatorAddress, owner)
	})

	t.Run("call failure wraps token fetch", func(t *testing.T) {
		client, mockEth, _ := setupClientTest(t)
		ctx := context.Background()

		mockEth.EXPECT().
			CallContract(ctx, gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("no such token"))

		owner, err := client.GetOwner(ctx, 7)
		assert.Empty(t, owner)
		assert.True(t, errors.Is(err, domain.ErrTokenFetch))
	})
}

func TestRevealContentHash(t *testing.T) {
	client, mockEth, parsedABI := setupClientTest(t)
	ctx := context.Background()

	returnData, err := parsedABI.Methods["revealPrompt"].Outputs.Pack("QmSecret")
	require.NoError(t, err)

	mockEth.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		Return(returnData, nil)

	contentHash, err := client.RevealContentHash(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "QmSecret", contentHash)
}

func TestCallTargetsContract(t *testing.T) {
	client, mockEth, parsedABI := setupClientTest(t)
	ctx := context.Background()

	returnData, err := parsedABI.Methods["getAllPrompts"].Outputs.Pack([]*big.Int{})
	require.NoError(t, err)

	expectedData, err := parsedABI.Pack("getAllPrompts")
	require.NoError(t, err)

	mockEth.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			assert.Equal(t, common.HexToAddress(contractAddress), *msg.To)
			assert.Equal(t, expectedData, msg.Data)
			return returnData, nil
		})

	_, err = client.ListTokenIDs(ctx)
	require.NoError(t, err)
}
