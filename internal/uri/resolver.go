package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/promptfi/prompt-market/internal/adapter"
	"github.com/promptfi/prompt-market/internal/logger"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
}

// Resolver resolves an IPFS content hash to a fetchable gateway URL.
// It accepts bare CIDs, ipfs:// URIs and existing gateway URLs.
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve returns a gateway URL serving the given content hash.
	// It makes a HEAD request against each configured gateway and returns
	// the first one that responds OK; an error means no gateway can serve
	// the hash right now.
	Resolve(ctx context.Context, contentHash string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, contentHash string) (string, error) {
	cid := contentHash
	if c, ok := strings.CutPrefix(contentHash, "ipfs://"); ok {
		cid = c
	} else if strings.Contains(contentHash, "/ipfs/") {
		parts := strings.Split(contentHash, "/ipfs/")
		if len(parts) >= 2 {
			cid = parts[1]
		}
	}

	return r.resolveIPFS(ctx, cid)
}

// resolveIPFS finds a working IPFS gateway for the given CID
func (r *resolver) resolveIPFS(ctx context.Context, cid string) (string, error) {
	if len(r.config.IPFSGateways) == 0 {
		return "", fmt.Errorf("no IPFS gateways configured")
	}

	logger.DebugCtx(ctx, "Resolving IPFS CID", zap.String("cid", cid), zap.Int("gateways", len(r.config.IPFSGateways)))

	// Try all gateways in parallel
	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(r.config.IPFSGateways))
	var wg sync.WaitGroup

	// Test each gateway with HEAD request
	for _, gateway := range r.config.IPFSGateways {
		wg.Add(1)
		go func(gw string) {
			defer wg.Done()

			url := fmt.Sprintf("%s/ipfs/%s", gw, cid)
			resp, err := r.httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(gateway)
	}

	// Wait for all goroutines in a separate goroutine
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Return the first successful result
	for res := range resultCh {
		if res.err == nil {
			logger.DebugCtx(ctx, "Found working IPFS gateway", zap.String("url", res.url))
			return res.url, nil
		}
	}

	return "", fmt.Errorf("no working IPFS gateway found for CID: %s", cid)
}
