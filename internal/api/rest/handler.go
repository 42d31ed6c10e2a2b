package rest

import (
	"errors"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promptfi/prompt-market/internal/catalog"
	"github.com/promptfi/prompt-market/internal/domain"
	"github.com/promptfi/prompt-market/internal/ledger"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListPrompts retrieves the public catalog of active listings
	// GET /api/v1/prompts?category=<category>
	ListPrompts(c *gin.Context)

	// GetCatalogViews retrieves the listings, owned and created views for an address
	// GET /api/v1/prompts/views?address=<address>&category=<category>
	GetCatalogViews(c *gin.Context)

	// RevealPrompt retrieves the full metadata of a prompt, including its body
	// GET /api/v1/prompts/:id/reveal
	RevealPrompt(c *gin.Context)

	// MintPrompt pins metadata and mints a new prompt token (requires authentication)
	// POST /api/v1/prompts
	MintPrompt(c *gin.Context)

	// PurchasePrompt buys a listed prompt (requires authentication)
	// POST /api/v1/prompts/:id/purchase
	PurchasePrompt(c *gin.Context)

	// RatePrompt submits a 1..5 rating (requires authentication)
	// POST /api/v1/prompts/:id/rating
	RatePrompt(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	chain        domain.Chain
	synchronizer catalog.Synchronizer
	market       catalog.Market
	signer       ledger.Signer
}

// NewHandler creates a new REST API handler
func NewHandler(chain domain.Chain, synchronizer catalog.Synchronizer, market catalog.Market, signer ledger.Signer) Handler {
	return &handler{
		chain:        chain,
		synchronizer: synchronizer,
		market:       market,
		signer:       signer,
	}
}

// ListPrompts retrieves the public catalog of active listings
func (h *handler) ListPrompts(c *gin.Context) {
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	cat, err := h.synchronizer.SyncCatalog(c.Request.Context(), "")
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": catalog.FilterByCategory(cat.Listings, category),
	})
}

// GetCatalogViews retrieves the role-based catalog views for an address
func (h *handler) GetCatalogViews(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		respondBadRequest(c, "Address is required")
		return
	}
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	category, ok := parseCategory(c)
	if !ok {
		return
	}

	cat, err := h.synchronizer.SyncCatalog(c.Request.Context(), address)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	cat.Listings = catalog.FilterByCategory(cat.Listings, category)
	cat.Owned = catalog.FilterByCategory(cat.Owned, category)
	cat.Created = catalog.FilterByCategory(cat.Created, category)

	c.JSON(http.StatusOK, cat)
}

// RevealPrompt retrieves the full metadata of a prompt
func (h *handler) RevealPrompt(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	blob, err := h.synchronizer.Reveal(c.Request.Context(), tokenID)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, RevealResponse{
		TokenID:  tokenID,
		Category: blob.Category,
		Title:    blob.Title,
		Prompt:   blob.Prompt,
	})
}

// MintPrompt pins metadata and mints a new prompt token
func (h *handler) MintPrompt(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	price, ok := new(big.Int).SetString(req.Price, 10)
	if !ok {
		respondValidationError(c, "price must be a decimal wei amount")
		return
	}

	result, err := h.market.Mint(c.Request.Context(), h.signer, catalog.MintInput{
		Title:    req.Title,
		Prompt:   req.Prompt,
		Category: domain.Category(req.Category),
		Price:    price,
	})
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// PurchasePrompt buys a listed prompt
func (h *handler) PurchasePrompt(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	payment, ok := new(big.Int).SetString(req.Payment, 10)
	if !ok {
		respondValidationError(c, "payment must be a decimal wei amount")
		return
	}

	txHash, err := h.market.Purchase(c.Request.Context(), h.signer, tokenID, payment)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, TxResponse{TxHash: txHash})
}

// RatePrompt submits a rating for a prompt
func (h *handler) RatePrompt(c *gin.Context) {
	tokenID, ok := parseTokenID(c)
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	txHash, err := h.market.Rate(c.Request.Context(), h.signer, tokenID, req.Score)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, TxResponse{TxHash: txHash})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Chain:  string(h.chain),
	})
}

// respondDomainError maps domain sentinel errors to HTTP responses
func (h *handler) respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidRating):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrTokenNotFound):
		respondNotFound(c, "Token not found")
	case errors.Is(err, domain.ErrMetadataStore):
		respondWithError(c, http.StatusBadGateway, errCodeMetadataError, "Metadata store error", err.Error())
	case errors.Is(err, domain.ErrLedgerWrite):
		respondWithError(c, http.StatusBadGateway, errCodeLedgerError, "Ledger transaction failed", err.Error())
	case errors.Is(err, domain.ErrLedgerUnavailable):
		respondWithError(c, http.StatusServiceUnavailable, errCodeLedgerError, "Ledger unavailable")
	default:
		respondInternalError(c, err, "Internal server error", zap.String("path", c.Request.URL.Path))
	}
}

func parseTokenID(c *gin.Context) (uint64, bool) {
	tokenID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid token ID", err.Error())
		return 0, false
	}
	return tokenID, true
}

func parseCategory(c *gin.Context) (domain.Category, bool) {
	raw := c.Query("category")
	if raw == "" {
		return domain.CategoryAll, true
	}
	category := domain.Category(raw)
	if category != domain.CategoryAll && !domain.IsValidCategory(category) {
		respondValidationError(c, "unknown category: "+raw)
		return "", false
	}
	return category, true
}
