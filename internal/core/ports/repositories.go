package ports

import (
	"context"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
)

// KVStore is the generic key-value storage collaborator. Lead records
// are stored as serialized strings under namespaced keys; the store
// itself knows nothing about leads.
type KVStore interface {
	// List returns every key that starts with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Get fetches the value for key. The bool reports presence; an
	// absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Ping verifies the collaborator is reachable.
	Ping(ctx context.Context) error
	// Close releases any underlying connections.
	Close() error
}

// LeadRepository is the lead store adapter over the key-value
// collaborator.
type LeadRepository interface {
	// LoadAll fetches and decodes every lead record. Individual
	// records that are missing or unparseable are dropped; the load
	// only fails when the key listing itself fails.
	LoadAll(ctx context.Context) ([]domain.Lead, error)
	// Save writes a single lead back under its namespaced key.
	Save(ctx context.Context, lead domain.Lead) error
}
