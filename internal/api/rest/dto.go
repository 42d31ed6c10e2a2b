package rest

import (
	"github.com/promptfi/prompt-market/internal/domain"
)

// MintRequest is the body for POST /api/v1/prompts
type MintRequest struct {
	Title    string `json:"title" binding:"required"`
	Prompt   string `json:"prompt" binding:"required"`
	Category string `json:"category" binding:"required"`
	// Price in wei, decimal string
	Price string `json:"price" binding:"required"`
}

// PurchaseRequest is the body for POST /api/v1/prompts/:id/purchase
type PurchaseRequest struct {
	// Payment in wei, decimal string; must cover the listed price
	Payment string `json:"payment" binding:"required"`
}

// RateRequest is the body for POST /api/v1/prompts/:id/rating
type RateRequest struct {
	Score int `json:"score" binding:"required"`
}

// TxResponse reports a submitted and mined transaction
type TxResponse struct {
	TxHash string `json:"tx_hash"`
}

// RevealResponse carries the full metadata of a purchased prompt
type RevealResponse struct {
	TokenID  uint64          `json:"token_id"`
	Category domain.Category `json:"category"`
	Title    string          `json:"title"`
	Prompt   string          `json:"prompt"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status string `json:"status"`
	Chain  string `json:"chain"`
}
