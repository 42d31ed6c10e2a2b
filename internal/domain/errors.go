package domain

import "errors"

var (
	// ErrLedgerUnavailable is returned when the token set cannot be enumerated;
	// it is terminal for the whole sync and no partial catalog is produced
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrTokenFetch is returned when a single token's on-chain record or owner
	// lookup fails; the token is excluded from all views but the sync proceeds
	ErrTokenFetch = errors.New("token fetch failed")

	// ErrMetadataStore is returned when the off-chain metadata store fails.
	// On the read path it only degrades a record's title; on the write path
	// it aborts the mint before any ledger transaction is submitted.
	ErrMetadataStore = errors.New("metadata store error")

	// ErrLedgerWrite is returned when a ledger transaction fails or reverts;
	// the wrapped message carries the revert reason when the node provides one
	ErrLedgerWrite = errors.New("ledger write failed")

	// ErrInvalidRating is returned for a rating outside [1,5]; it never
	// reaches the ledger
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

	// ErrInvalidInput is returned when mint input fails local validation;
	// nothing is pinned and no transaction is submitted
	ErrInvalidInput = errors.New("invalid input")

	// ErrTokenNotFound is returned when a token id is not known to the ledger
	ErrTokenNotFound = errors.New("token not found")
)
