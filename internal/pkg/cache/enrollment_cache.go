package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
)

// ErrCacheMiss indicates the key was not found in the cache.
var ErrCacheMiss = errors.New("cache miss")

// EnrollmentViewCache is a read-through cache for the canonical
// enrollment/course join, keyed by student id. It only ever shortens the
// path to the store; a miss or a marshalling failure just falls back to
// the database.
type EnrollmentViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEnrollmentViewCache creates a cache backed by the given redis client.
func NewEnrollmentViewCache(client *redis.Client, ttl time.Duration) *EnrollmentViewCache {
	return &EnrollmentViewCache{
		client: client,
		ttl:    ttl,
	}
}

func enrollmentKey(studentID int64) string {
	return fmt.Sprintf("enrollments:student:%d", studentID)
}

// Get returns the cached join for a student, or ErrCacheMiss.
func (c *EnrollmentViewCache) Get(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error) {
	data, err := c.client.Get(ctx, enrollmentKey(studentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var views []dto.EnrollmentView
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, fmt.Errorf("cache entry corrupt: %w", err)
	}
	return views, nil
}

// Set stores the join for a student with the configured TTL.
func (c *EnrollmentViewCache) Set(ctx context.Context, studentID int64, views []dto.EnrollmentView) error {
	data, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return c.client.Set(ctx, enrollmentKey(studentID), data, c.ttl).Err()
}

// Invalidate drops the cached join for a student.
func (c *EnrollmentViewCache) Invalidate(ctx context.Context, studentID int64) error {
	return c.client.Del(ctx, enrollmentKey(studentID)).Err()
}
