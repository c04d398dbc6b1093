// Package store persists the notary ledger's single aggregate record.
// Implementations must make Save atomic with respect to Load so the engine's
// read-modify-write cycle observes either the previous or the next snapshot,
// never a partial one.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"notary/internal/notary/models"
)

// ErrNotInitialized is returned by Load before the first Save. The service
// layer translates it into a domain error.
var ErrNotInitialized = errors.New("ledger not initialized")

// Store is the typed get/set/has surface over one opaque persistent record.
type Store interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
	Initialized(ctx context.Context) (bool, error)
}

func encodeState(state *models.State) ([]byte, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return raw, nil
}

func decodeState(raw []byte) (*models.State, error) {
	var state models.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &state, nil
}
