package catalog

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/domain"
	"github.com/promptfi/prompt-market/internal/ledger"
	"github.com/promptfi/prompt-market/internal/logger"
	"github.com/promptfi/prompt-market/internal/metadatastore"
)

// Config holds synchronizer configuration
type Config struct {
	// MetadataTimeout bounds each per-token metadata fetch
	MetadataTimeout time.Duration
	// WorkerPoolSize bounds concurrent per-token enrichment
	WorkerPoolSize int
}

const (
	DEFAULT_METADATA_TIMEOUT = 8 * time.Second
	DEFAULT_WORKER_POOL_SIZE = 10
)

// Synchronizer reconciles on-chain token state with off-chain metadata into
// the three role-based catalog views. Every call re-fetches from the ledger
// and the metadata store; there is no cache to invalidate.
//
//go:generate mockgen -source=synchronizer.go -destination=../mocks/synchronizer.go -package=mocks -mock_names=Synchronizer=MockSynchronizer
type Synchronizer interface {
	// SyncCatalog builds the public, owned and created views.
	// callerAddress may be empty, in which case only Listings is populated.
	// Only a failed token enumeration is terminal (domain.ErrLedgerUnavailable);
	// per-token failures drop that token, metadata failures only degrade its title.
	SyncCatalog(ctx context.Context, callerAddress string) (*domain.Catalog, error)

	// Reveal fetches the full metadata blob for a token, including the
	// prompt body. Unlike sync enrichment, a metadata failure here
	// propagates (domain.ErrMetadataStore) so the caller can surface it.
	Reveal(ctx context.Context, tokenID uint64) (*domain.MetadataBlob, error)
}

type synchronizer struct {
	ledger   ledger.Client
	metadata metadatastore.Store
	clock    adapter.Clock
	config   Config
}

// NewSynchronizer creates a catalog synchronizer
func NewSynchronizer(ledgerClient ledger.Client, metadata metadatastore.Store, clock adapter.Clock, config Config) Synchronizer {
	if config.MetadataTimeout == 0 {
		config.MetadataTimeout = DEFAULT_METADATA_TIMEOUT
	}
	if config.WorkerPoolSize == 0 {
		config.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	return &synchronizer{
		ledger:   ledgerClient,
		metadata: metadata,
		clock:    clock,
		config:   config,
	}
}

func (s *synchronizer) SyncCatalog(ctx context.Context, callerAddress string) (*domain.Catalog, error) {
	runID := ulid.Make().String()
	start := s.clock.Now()

	ids, err := s.ledger.ListTokenIDs(ctx)
	if err != nil {
		// Terminal: no partial catalog
		return nil, err
	}

	logger.DebugCtx(ctx, "Enumerated tokens",
		zap.String("sync_id", runID),
		zap.Int("count", len(ids)),
	)

	// Enrich tokens concurrently. Each task owns its own record and returns
	// nil on failure, so tasks share no mutable state and correctness is
	// identical to a sequential loop.
	pool := pond.NewResultPool[*domain.DisplayRecord](s.config.WorkerPoolSize)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, id := range ids {
		group.Submit(func() *domain.DisplayRecord {
			return s.enrichToken(ctx, runID, id)
		})
	}

	records, err := group.Wait()
	if err != nil {
		// Tasks never return errors; this only fires on pool shutdown
		return nil, err
	}

	catalog := &domain.Catalog{
		Listings: []domain.DisplayRecord{},
		Owned:    []domain.DisplayRecord{},
		Created:  []domain.DisplayRecord{},
	}

	for _, record := range records {
		if record == nil {
			continue
		}
		if record.Active {
			catalog.Listings = append(catalog.Listings, *record)
		}
		if callerAddress == "" {
			continue
		}
		// Owned and created are independent: a self-bought token lands in both
		if domain.SameAddress(record.Owner, callerAddress) {
			catalog.Owned = append(catalog.Owned, *record)
		}
		if domain.SameAddress(record.Creator, callerAddress) {
			catalog.Created = append(catalog.Created, *record)
		}
	}

	logger.InfoCtx(ctx, "Catalog sync complete",
		zap.String("sync_id", runID),
		zap.Int("tokens", len(ids)),
		zap.Int("listings", len(catalog.Listings)),
		zap.Int("owned", len(catalog.Owned)),
		zap.Int("created", len(catalog.Created)),
		zap.Duration("duration", s.clock.Since(start)),
	)

	return catalog, nil
}

// enrichToken fetches one token's on-chain record, owner and metadata title.
// A record or owner failure drops the token (returns nil); a metadata
// failure only degrades the title to the placeholder.
func (s *synchronizer) enrichToken(ctx context.Context, runID string, tokenID uint64) *domain.DisplayRecord {
	record, err := s.ledger.GetTokenRecord(ctx, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "Dropping token: record fetch failed",
			zap.String("sync_id", runID),
			zap.Uint64("token_id", tokenID),
			zap.Error(err),
		)
		return nil
	}

	owner, err := s.ledger.GetOwner(ctx, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "Dropping token: owner lookup failed",
			zap.String("sync_id", runID),
			zap.Uint64("token_id", tokenID),
			zap.Error(err),
		)
		return nil
	}
	record.Owner = owner

	title := domain.DEFAULT_PROMPT_TITLE
	blob, err := s.metadata.Get(ctx, record.ContentHash, s.config.MetadataTimeout)
	if err != nil {
		logger.WarnCtx(ctx, "Metadata fetch failed, using placeholder title",
			zap.String("sync_id", runID),
			zap.Uint64("token_id", tokenID),
			zap.Error(err),
		)
	} else if blob.Title != "" {
		title = blob.Title
	}

	return &domain.DisplayRecord{
		TokenRecord: *record,
		Title:       title,
	}
}

func (s *synchronizer) Reveal(ctx context.Context, tokenID uint64) (*domain.MetadataBlob, error) {
	contentHash, err := s.ledger.RevealContentHash(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	return s.metadata.Get(ctx, contentHash, s.config.MetadataTimeout)
}

// FilterByCategory returns the records matching category, preserving
// relative order. domain.CategoryAll is the identity filter.
func FilterByCategory(records []domain.DisplayRecord, category domain.Category) []domain.DisplayRecord {
	if category == domain.CategoryAll || category == "" {
		return records
	}
	filtered := make([]domain.DisplayRecord, 0, len(records))
	for _, record := range records {
		if record.Category == category {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
