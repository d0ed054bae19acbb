package services

//go:generate mockgen -source=record.go -destination=record_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/models"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

var (
	// ErrNotFound is returned when a record does not exist or is not visible to the caller.
	ErrNotFound = errors.New("record not found")
)

// RecordReader reads entity rows.
type RecordReader interface {
	List(ctx context.Context, q models.ListQuery) ([]models.Record, int64, error) // Returns a page of rows and the filtered total
	GetByID(ctx context.Context, id int64, owner string) (models.Record, error)  // Returns a row, sql.ErrNoRows when absent
}

// RecordWriter writes entity rows.
type RecordWriter interface {
	Insert(ctx context.Context, values map[string]any) (models.Record, error)                         // Inserts a row
	Update(ctx context.Context, id int64, owner string, values map[string]any) (models.Record, error) // Patches a row, sql.ErrNoRows when absent
	Delete(ctx context.Context, id int64, owner string) (bool, error)                                 // Deletes a row and reports whether it existed
}

// RecordCache caches single records.
type RecordCache interface {
	Get(ctx context.Context, id int64) (models.Record, error) // Returns a cached record
	Set(ctx context.Context, rec models.Record) error         // Caches a record
	Delete(ctx context.Context, id int64) error               // Drops a cached record
	MarkDeleted(ctx context.Context, id int64) error          // Blocks caching of a deleted record
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook schedules fn to run once the current request transaction commits.
type CommitHook func(ctx context.Context, fn func(ctx context.Context))

// RecordService implements owner-scoped CRUD for one entity.
// Cache, Kafka writer and commit hook are optional.
type RecordService struct {
	entity      *schema.Entity
	readRepo    RecordReader
	writeRepo   RecordWriter
	cacheRepo   RecordCache
	kafkaWriter KafkaWriter
	afterCommit CommitHook
}

// NewRecordService creates a new RecordService for entity.
func NewRecordService(
	entity *schema.Entity,
	readRepo RecordReader,
	writeRepo RecordWriter,
	cacheRepo RecordCache,
	kafkaWriter KafkaWriter,
	afterCommit CommitHook,
) *RecordService {
	return &RecordService{
		entity:      entity,
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
	}
}

// Entity returns the entity served by s.
func (s *RecordService) Entity() *schema.Entity {
	return s.entity
}

// List returns one page of records matching q.
// An empty q.Owner lists records of every owner.
func (s *RecordService) List(ctx context.Context, q models.ListQuery) (*models.ListResult, error) {
	if q.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must be non-negative", schema.ErrValidation)
	}
	if q.Limit < 1 || q.Limit > models.MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", schema.ErrValidation, models.MaxLimit)
	}

	filters, err := s.entity.FilterValues(q.Filters)
	if err != nil {
		return nil, err
	}
	q.Filters = filters

	items, total, err := s.readRepo.List(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list records", "entity", s.entity.Name, "owner", q.Owner, "error", err)
		return nil, err
	}

	return &models.ListResult{Items: items, Total: total, Skip: q.Skip, Limit: q.Limit}, nil
}

// Get returns the record with id. An empty owner means unscoped.
func (s *RecordService) Get(ctx context.Context, id int64, owner string) (models.Record, error) {
	if s.cacheRepo != nil {
		rec, err := s.cacheRepo.Get(ctx, id)
		if err == nil {
			if owner != "" && rec.UserID() != owner {
				return nil, ErrNotFound
			}
			return rec, nil
		}
	}

	rec, err := s.lookup(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		s.onCommit(ctx, func(ctx context.Context) {
			if err := s.cacheRepo.Set(ctx, rec); err != nil {
				logger.FromContext(ctx).Warnw("failed to cache record", "entity", s.entity.Name, "id", id, "error", err)
			}
		})
	}

	return rec, nil
}

func (s *RecordService) lookup(ctx context.Context, id int64, owner string) (models.Record, error) {
	rec, err := s.readRepo.GetByID(ctx, id, owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get record", "entity", s.entity.Name, "id", id, "owner", owner, "error", err)
		return nil, err
	}
	return rec, nil
}

// Create stores payload as a new record owned by owner.
func (s *RecordService) Create(ctx context.Context, payload map[string]any, owner string) (models.Record, error) {
	values, err := s.entity.CreateValues(payload)
	if err != nil {
		return nil, err
	}
	values[models.ColumnUserID] = owner

	rec, err := s.writeRepo.Insert(ctx, values)
	if err != nil {
		if !errors.Is(err, schema.ErrValidation) {
			logger.FromContext(ctx).Errorw("failed to create record", "entity", s.entity.Name, "owner", owner, "error", err)
		}
		return nil, err
	}

	s.publish(ctx, models.OperationCreate, rec.ID(), owner)
	return rec, nil
}

// Update applies the non-null known keys of patch to the record with id owned by owner.
// An empty patch returns the current record.
func (s *RecordService) Update(ctx context.Context, id int64, patch map[string]any, owner string) (models.Record, error) {
	values, err := s.entity.PatchValues(patch)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return s.lookup(ctx, id, owner)
	}

	rec, err := s.writeRepo.Update(ctx, id, owner, values)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		if !errors.Is(err, schema.ErrValidation) {
			logger.FromContext(ctx).Errorw("failed to update record", "entity", s.entity.Name, "id", id, "owner", owner, "error", err)
		}
		return nil, err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, models.OperationUpdate, id, owner)
	return rec, nil
}

// Delete removes the record with id owned by owner and reports whether it existed.
func (s *RecordService) Delete(ctx context.Context, id int64, owner string) (bool, error) {
	found, err := s.writeRepo.Delete(ctx, id, owner)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete record", "entity", s.entity.Name, "id", id, "owner", owner, "error", err)
		return false, err
	}
	if !found {
		return false, nil
	}

	if s.cacheRepo != nil {
		s.onCommit(ctx, func(ctx context.Context) {
			if err := s.cacheRepo.MarkDeleted(ctx, id); err != nil {
				logger.FromContext(ctx).Warnw("failed to mark cached record deleted", "entity", s.entity.Name, "id", id, "error", err)
			}
		})
	}
	s.publish(ctx, models.OperationDelete, id, owner)
	return true, nil
}

// BatchCreate creates every payload in order. The first failure aborts the batch.
func (s *RecordService) BatchCreate(ctx context.Context, payloads []map[string]any, owner string) ([]models.Record, error) {
	created := make([]models.Record, 0, len(payloads))
	for i, payload := range payloads {
		rec, err := s.Create(ctx, payload, owner)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		created = append(created, rec)
	}
	return created, nil
}

// BatchUpdate applies every item in order, skipping records that are not found.
func (s *RecordService) BatchUpdate(ctx context.Context, items []models.BatchUpdateItem, owner string) ([]models.Record, error) {
	updated := make([]models.Record, 0, len(items))
	for i, item := range items {
		rec, err := s.Update(ctx, item.ID, item.Updates, owner)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		updated = append(updated, rec)
	}
	return updated, nil
}

// BatchDelete deletes every id in order and returns how many records were removed.
func (s *RecordService) BatchDelete(ctx context.Context, ids []int64, owner string) (int, error) {
	deleted := 0
	for _, id := range ids {
		found, err := s.Delete(ctx, id, owner)
		if err != nil {
			return 0, err
		}
		if found {
			deleted++
		}
	}
	return deleted, nil
}

func (s *RecordService) onCommit(ctx context.Context, fn func(ctx context.Context)) {
	if s.afterCommit == nil {
		fn(ctx)
		return
	}
	s.afterCommit(ctx, fn)
}

func (s *RecordService) invalidate(ctx context.Context, id int64) {
	if s.cacheRepo == nil {
		return
	}
	s.onCommit(ctx, func(ctx context.Context) {
		if err := s.cacheRepo.Delete(ctx, id); err != nil {
			logger.FromContext(ctx).Warnw("failed to invalidate cached record", "entity", s.entity.Name, "id", id, "error", err)
		}
	})
}

// publish sends a change event to Kafka once the transaction commits.
func (s *RecordService) publish(ctx context.Context, op string, id int64, owner string) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Entity:    s.entity.Name,
		Operation: op,
		RecordID:  id,
		UserID:    owner,
		Timestamp: time.Now().Unix(),
	}

	s.onCommit(ctx, func(ctx context.Context) {
		data, err := json.Marshal(event)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
			return
		}

		msg := kafka.Message{
			Key:   []byte(fmt.Sprintf("%s:%d", event.Entity, event.RecordID)),
			Value: data,
		}

		if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
			logger.FromContext(ctx).Errorw("failed to publish event to Kafka", "event_id", event.EventID, "entity", event.Entity, "operation", op, "error", err)
			return
		}
		logger.FromContext(ctx).Infow("event published to Kafka", "event_id", event.EventID, "entity", event.Entity, "operation", op, "record_id", id)
	})
}
