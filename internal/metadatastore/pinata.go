package metadatastore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"
	"go.uber.org/zap"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/domain"
	"github.com/promptfi/prompt-market/internal/logger"
	"github.com/promptfi/prompt-market/internal/uri"
)

// Config holds Pinata API configuration
type Config struct {
	APIURL    string
	APIKey    string
	APISecret string
}

// Store is the content-addressed off-chain metadata store.
// Put must succeed before any ledger transaction referencing the returned
// content hash is submitted; Get is best-effort and bounded by timeout.
//
//go:generate mockgen -source=pinata.go -destination=../mocks/metadata_store.go -package=mocks -mock_names=Store=MockMetadataStore
type Store interface {
	// Put pins the blob and returns its content hash.
	// Failure wraps domain.ErrMetadataStore.
	Put(ctx context.Context, blob *domain.MetadataBlob) (string, error)

	// Get fetches the blob for a content hash, giving up after timeout.
	// Failure wraps domain.ErrMetadataStore.
	Get(ctx context.Context, contentHash string, timeout time.Duration) (*domain.MetadataBlob, error)
}

type pinataStore struct {
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
	resolver   uri.Resolver
}

// NewPinataStore creates a metadata store backed by the Pinata pinning API
func NewPinataStore(config Config, httpClient adapter.HTTPClient, json adapter.JSON, resolver uri.Resolver) Store {
	if config.APIURL == "" {
		config.APIURL = domain.DEFAULT_PINATA_API
	}
	return &pinataStore{
		config:     config,
		httpClient: httpClient,
		json:       json,
		resolver:   resolver,
	}
}

// pinRequest is the pinJSONToIPFS request envelope
type pinRequest struct {
	PinataContent *domain.MetadataBlob `json:"pinataContent"`
}

// pinResponse is the pinJSONToIPFS response
type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func (s *pinataStore) Put(ctx context.Context, blob *domain.MetadataBlob) (string, error) {
	payload, err := s.json.Marshal(pinRequest{PinataContent: blob})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal blob: %w", domain.ErrMetadataStore, err)
	}

	// Canonicalize so identical blobs always pin to the identical CID
	canonical, err := jcs.Transform(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to canonicalize blob: %w", domain.ErrMetadataStore, err)
	}

	headers := map[string]string{
		"Content-Type":          "application/json",
		"pinata_api_key":        s.config.APIKey,
		"pinata_secret_api_key": s.config.APISecret,
	}

	url := s.config.APIURL + "/pinning/pinJSONToIPFS"
	respBody, err := s.httpClient.Post(ctx, url, headers, bytes.NewReader(canonical))
	if err != nil {
		return "", fmt.Errorf("%w: pin failed: %w", domain.ErrMetadataStore, err)
	}

	var resp pinResponse
	if err := s.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: failed to decode pin response: %w", domain.ErrMetadataStore, err)
	}
	if resp.IpfsHash == "" {
		return "", fmt.Errorf("%w: pin response contained no hash", domain.ErrMetadataStore)
	}

	logger.InfoCtx(ctx, "Pinned metadata blob", zap.String("content_hash", resp.IpfsHash))

	return resp.IpfsHash, nil
}

func (s *pinataStore) Get(ctx context.Context, contentHash string, timeout time.Duration) (*domain.MetadataBlob, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url, err := s.resolver.Resolve(fetchCtx, contentHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMetadataStore, err)
	}

	var blob domain.MetadataBlob
	if err := s.httpClient.Get(fetchCtx, url, &blob); err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", domain.ErrMetadataStore, contentHash, err)
	}

	return &blob, nil
}
