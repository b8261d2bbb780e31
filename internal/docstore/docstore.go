// Package docstore is the legacy document store of generated images, kept in Redis.
// It is read by the migration and never by the HTTP server.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// ErrNotFound is returned for an unknown document id.
var ErrNotFound = errors.New("document not found")

const (
	docKeyPrefix    = "images:"
	indexKey        = "images:index"
	userIndexPrefix = "images:user:"
	channelPrefix   = "images:changes:"
)

func docKey(id string) string { return docKeyPrefix + id }

func userIndexKey(userID string) string { return userIndexPrefix + userID }

// Channel returns the pub/sub channel notified on every change to a user's documents.
func Channel(userID string) string { return channelPrefix + userID }

// Store keeps ImageRecords as JSON strings plus sorted-set indexes scored by createdAt.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Save stores a record and notifies the owner's channel. A missing id or
// createdAt is filled in. It returns the document id.
func (s *Store) Save(ctx context.Context, rec models.ImageRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixMilli()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal image record: %w", err)
	}

	score := float64(rec.CreatedAt)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, docKey(rec.ID), data, 0)
		pipe.ZAdd(ctx, indexKey, redis.Z{Score: score, Member: rec.ID})
		pipe.ZAdd(ctx, userIndexKey(rec.UserID), redis.Z{Score: score, Member: rec.ID})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("save image record %s: %w", rec.ID, err)
	}

	if err := s.rdb.Publish(ctx, Channel(rec.UserID), rec.ID).Err(); err != nil {
		logger.Log.Warnw("failed to publish document change", "id", rec.ID, "user_id", rec.UserID, "error", err)
	}
	return rec.ID, nil
}

// Get returns one record or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*models.ImageRecord, error) {
	data, err := s.rdb.Get(ctx, docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec models.ImageRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode image record %s: %w", id, err)
	}
	return &rec, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.rdb.ZCard(ctx, indexKey).Result()
}

// List returns every record, oldest first.
func (s *Store) List(ctx context.Context) ([]models.ImageRecord, error) {
	return s.listIndex(ctx, indexKey)
}

// ListByUser returns the records of one user, oldest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.ImageRecord, error) {
	return s.listIndex(ctx, userIndexKey(userID))
}

func (s *Store) listIndex(ctx context.Context, key string) ([]models.ImageRecord, error) {
	ids, err := s.rdb.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", key, err)
	}

	records := make([]models.ImageRecord, 0, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(id)
	}

	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// indexed but deleted
			continue
		}
		var rec models.ImageRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			logger.Log.Warnw("skipping undecodable document", "id", ids[i], "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Watch delivers the user's records to callback now and again after every change,
// until the returned cancel function is called or ctx ends. A failed read delivers
// an empty list. Callbacks run on a single goroutine and never start after cancel returns.
func (s *Store) Watch(ctx context.Context, userID string, callback func([]models.ImageRecord)) (func(), error) {
	ctx, stop := context.WithCancel(ctx)

	sub := s.rdb.Subscribe(ctx, Channel(userID))
	if _, err := sub.Receive(ctx); err != nil {
		stop()
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", Channel(userID), err)
	}

	var stopped atomic.Bool
	deliver := func() { s.deliver(ctx, userID, &stopped, callback) }

	ch := sub.Channel()
	go func() {
		defer func() { _ = sub.Close() }()

		deliver()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				deliver()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			stop()
		})
	}, nil
}

// deliver reads the user's records and hands them to callback unless the
// watch has ended. A failed read delivers an empty list.
func (s *Store) deliver(ctx context.Context, userID string, stopped *atomic.Bool, callback func([]models.ImageRecord)) {
	records, err := s.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("error streaming images", "user_id", userID, "error", err)
		records = []models.ImageRecord{}
	}
	if stopped.Load() || ctx.Err() != nil {
		return
	}
	callback(records)
}
