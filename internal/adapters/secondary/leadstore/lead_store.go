package leadstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	apperrors "github.com/lorrc/medspa-leads-backend/internal/core/errors"
	"github.com/lorrc/medspa-leads-backend/internal/core/ports"
)

// DefaultKeyPrefix namespaces lead records in the key-value store.
const DefaultKeyPrefix = "lead:"

// LeadStore adapts the generic key-value collaborator into a lead
// repository. Records are stored as JSON under "lead:<id>".
type LeadStore struct {
	kv        ports.KVStore
	keyPrefix string
	logger    *slog.Logger
}

var _ ports.LeadRepository = (*LeadStore)(nil)

// New creates a lead store over the given key-value collaborator.
func New(kv ports.KVStore, keyPrefix string, logger *slog.Logger) *LeadStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &LeadStore{
		kv:        kv,
		keyPrefix: keyPrefix,
		logger:    logger.With("adapter", "leadstore"),
	}
}

// LoadAll lists every lead key and decodes each record. The load is
// best-effort: records that have gone missing or fail to parse are
// dropped and logged, not treated as a batch failure. Only a failed
// key listing makes LoadAll return an error.
func (s *LeadStore) LoadAll(ctx context.Context) ([]domain.Lead, error) {
	keys, err := s.kv.List(ctx, s.keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: listing lead keys: %v", apperrors.ErrStorageUnavailable, err)
	}

	leads := make([]domain.Lead, 0, len(keys))
	for _, key := range keys {
		value, ok, err := s.kv.Get(ctx, key)
		if err != nil || !ok {
			s.logger.Warn("dropping unreadable lead record", "key", key, "error", err)
			continue
		}

		var lead domain.Lead
		if err := json.Unmarshal([]byte(value), &lead); err != nil {
			s.logger.Warn("dropping unparseable lead record", "key", key, "error", err)
			continue
		}

		leads = append(leads, lead)
	}

	return leads, nil
}

// Save serializes one lead and writes it back under its namespaced
// key.
func (s *LeadStore) Save(ctx context.Context, lead domain.Lead) error {
	value, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to serialize lead %s: %w", lead.ID, err)
	}

	if err := s.kv.Set(ctx, s.keyPrefix+lead.ID, string(value)); err != nil {
		return fmt.Errorf("failed to persist lead %s: %w", lead.ID, err)
	}
	return nil
}
