package catalog

import (
	"context"
	"time"

	"salesreport/internal"
	"salesreport/internal/config"
	"salesreport/internal/storage"
)

const lastSyncKey = "catalog.last_sync"

// SyncService refreshes the local catalog cache from the remote service so
// offline runs can enrich without a network call.
type SyncService struct {
	db     *storage.DB
	client *Client
}

func NewSyncService(db *storage.DB, cfg config.Config) *SyncService {
	return &SyncService{db: db, client: NewClient(cfg)}
}

func (s *SyncService) Sync(ctx context.Context) (int, error) {
	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.db.UpsertProducts(products); err != nil {
		return 0, err
	}
	_ = s.db.SetMetadata(lastSyncKey, time.Now().UTC().Format(time.RFC3339))
	return len(products), nil
}

// CachedProducts returns the last synced catalog snapshot. An empty cache is
// not an error; enrichment then marks every transaction unmatched.
func (s *SyncService) CachedProducts() ([]internal.ProductRecord, error) {
	return s.db.ListProducts()
}
