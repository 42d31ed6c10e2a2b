package metadatastore_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/domain"
	"github.com/promptfi/prompt-market/internal/logger"
	"github.com/promptfi/prompt-market/internal/metadatastore"
	"github.com/promptfi/prompt-market/internal/mocks"
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

type storeMocks struct {
	httpClient *mocks.MockHTTPClient
	resolver   *mocks.MockURIResolver
}

func setupStoreTest(t *testing.T) (metadatastore.Store, *storeMocks) {
	ctrl := gomock.NewController(t)

	m := &storeMocks{
		httpClient: mocks.NewMockHTTPClient(ctrl),
		resolver:   mocks.NewMockURIResolver(ctrl),
	}

	store := metadatastore.NewPinataStore(metadatastore.Config{
		APIURL:    "https://api.pinata.cloud",
		APIKey:    "test-key",
		APISecret: "test-secret",
	}, m.httpClient, adapter.NewJSON(), m.resolver)

	return store, m
}

func testBlob() *domain.MetadataBlob {
	return &domain.MetadataBlob{
		Title:     "Code review assistant",
		Prompt:    "Act as a senior reviewer...",
		Category:  domain.CategoryCoding,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPut(t *testing.T) {
	t.Run("pins the blob and returns its hash", func(t *testing.T) {
		store, m := setupStoreTest(t)
		ctx := context.Background()

		m.httpClient.
			EXPECT().
			Post(ctx, "https://api.pinata.cloud/pinning/pinJSONToIPFS", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body io.Reader) ([]byte, error) {
				assert.Equal(t, "application/json", headers["Content-Type"])
				assert.Equal(t, "test-key", headers["pinata_api_key"])
				assert.Equal(t, "test-secret", headers["pinata_secret_api_key"])

				payload, err := io.ReadAll(body)
				require.NoError(t, err)

				var envelope struct {
					PinataContent domain.MetadataBlob `json:"pinataContent"`
				}
				require.NoError(t, json.Unmarshal(payload, &envelope))
				assert.Equal(t, "Code review assistant", envelope.PinataContent.Title)
				assert.Equal(t, domain.CategoryCoding, envelope.PinataContent.Category)

				return []byte(`{"IpfsHash":"QmPinned"}`), nil
			})

		hash, err := store.Put(ctx, testBlob())
		require.NoError(t, err)
		assert.Equal(t, "QmPinned", hash)
	})

	t.Run("pin failure wraps the store error", func(t *testing.T) {
		store, m := setupStoreTest(t)
		ctx := context.Background()

		m.httpClient.
			EXPECT().
			Post(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("service unavailable"))

		hash, err := store.Put(ctx, testBlob())
		assert.Empty(t, hash)
		assert.True(t, errors.Is(err, domain.ErrMetadataStore))
	})

	t.Run("empty hash in response is an error", func(t *testing.T) {
		store, m := setupStoreTest(t)
		ctx := context.Background()

		m.httpClient.
			EXPECT().
			Post(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte(`{}`), nil)

		hash, err := store.Put(ctx, testBlob())
		assert.Empty(t, hash)
		assert.True(t, errors.Is(err, domain.ErrMetadataStore))
	})
}

func TestGet(t *testing.T) {
	t.Run("resolves and fetches the blob", func(t *testing.T) {
		store, m := setupStoreTest(t)

		const url = "https://gateway.pinata.cloud/ipfs/QmPinned"
		m.resolver.
			EXPECT().
			Resolve(gomock.Any(), "QmPinned").
			Return(url, nil)
		m.httpClient.
			EXPECT().
			Get(gomock.Any(), url, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
				blob := result.(*domain.MetadataBlob)
				*blob = *testBlob()
				return nil
			})

		blob, err := store.Get(context.Background(), "QmPinned", 8*time.Second)
		require.NoError(t, err)
		assert.Equal(t, "Code review assistant", blob.Title)
		assert.Equal(t, "Act as a senior reviewer...", blob.Prompt)
	})

	t.Run("fetch is bounded by the timeout", func(t *testing.T) {
		store, m := setupStoreTest(t)

		m.resolver.
			EXPECT().
			Resolve(gomock.Any(), "QmPinned").
			DoAndReturn(func(ctx context.Context, _ string) (string, error) {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
				return "", errors.New("gateway down")
			})

		blob, err := store.Get(context.Background(), "QmPinned", time.Second)
		assert.Nil(t, blob)
		assert.True(t, errors.Is(err, domain.ErrMetadataStore))
	})

	t.Run("fetch failure wraps the store error", func(t *testing.T) {
		store, m := setupStoreTest(t)

		m.resolver.
			EXPECT().
			Resolve(gomock.Any(), "QmPinned").
			Return("https://gateway.pinata.cloud/ipfs/QmPinned", nil)
		m.httpClient.
			EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("timeout"))

		blob, err := store.Get(context.Background(), "QmPinned", time.Second)
		assert.Nil(t, blob)
		assert.True(t, errors.Is(err, domain.ErrMetadataStore))
	})
}
