package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-entities/internal/models"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// ErrCacheMiss is returned when a record is not cached.
var ErrCacheMiss = errors.New("record not found in cache")

// deletedMarker is stored in place of a deleted record until the TTL expires.
const deletedMarker = "deleted"

// RecordCacheRepository caches single records of one entity in Redis.
type RecordCacheRepository struct {
	client redis.Cmdable
	exp    time.Duration
	entity *schema.Entity
}

// NewRecordCacheRepository creates a cache for entity records with the given TTL.
func NewRecordCacheRepository(client redis.Cmdable, expiration time.Duration, entity *schema.Entity) *RecordCacheRepository {
	return &RecordCacheRepository{client: client, exp: expiration, entity: entity}
}

func (r *RecordCacheRepository) key(id int64) string {
	return fmt.Sprintf("entity:%s:%d", r.entity.Table, id)
}

// Get returns the cached record with id or ErrCacheMiss.
func (r *RecordCacheRepository) Get(ctx context.Context, id int64) (models.Record, error) {
	key := r.key(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logCache(ctx, "get", key, err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	if string(val) == deletedMarker {
		return nil, ErrCacheMiss
	}

	return r.entity.DecodeRecord(val)
}

// Set caches rec under its id unless the key already holds a value.
// A record marked deleted is never cached again before the marker expires.
func (r *RecordCacheRepository) Set(ctx context.Context, rec models.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := r.key(rec.ID())
	err = r.client.SetNX(ctx, key, data, r.exp).Err()
	logCache(ctx, "setnx", key, err)
	return err
}

// Delete drops the cached record with id.
func (r *RecordCacheRepository) Delete(ctx context.Context, id int64) error {
	key := r.key(id)
	err := r.client.Del(ctx, key).Err()
	logCache(ctx, "del", key, err)
	return err
}

// MarkDeleted replaces the cached record with id by a deleted marker.
func (r *RecordCacheRepository) MarkDeleted(ctx context.Context, id int64) error {
	key := r.key(id)
	err := r.client.Set(ctx, key, deletedMarker, r.exp).Err()
	logCache(ctx, "mark deleted", key, err)
	return err
}
