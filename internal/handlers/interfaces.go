package handlers

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=handlers

import (
	"context"

	"github.com/sbilibin2017/gw-entities/internal/models"
)

// RecordLister lists records of one entity.
type RecordLister interface {
	List(ctx context.Context, q models.ListQuery) (*models.ListResult, error)
}

// RecordGetter fetches a single record.
type RecordGetter interface {
	Get(ctx context.Context, id int64, owner string) (models.Record, error)
}

// RecordCreator creates records.
type RecordCreator interface {
	Create(ctx context.Context, payload map[string]any, owner string) (models.Record, error)
	BatchCreate(ctx context.Context, payloads []map[string]any, owner string) ([]models.Record, error)
}

// RecordUpdater applies partial updates.
type RecordUpdater interface {
	Update(ctx context.Context, id int64, patch map[string]any, owner string) (models.Record, error)
	BatchUpdate(ctx context.Context, items []models.BatchUpdateItem, owner string) ([]models.Record, error)
}

// RecordDeleter deletes records.
type RecordDeleter interface {
	Delete(ctx context.Context, id int64, owner string) (bool, error)
	BatchDelete(ctx context.Context, ids []int64, owner string) (int, error)
}

// Pinger checks database connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}
