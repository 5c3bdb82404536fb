package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AvailabilityCache is a read-through cache for per-doctor availability
// lookups. Every Contract, ScheduleTemplate or Appointment write affecting a
// doctor must call InvalidateDoctor for that doctor: a stale "doctor
// available" read directly causes a double-booking attempt, so staleness is
// bounded by both the TTL and explicit invalidation.
//
// A nil *AvailabilityCache is a valid pass-through; callers never need to
// nil-check.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and returns the cache. Returns an error when the
// server is unreachable so the caller can decide to run uncached.
func New(addr, password string, db int, ttl time.Duration) (*AvailabilityCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &AvailabilityCache{client: client, ttl: ttl}, nil
}

func slotsKey(doctorID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("availability:doctor:%s:%s", doctorID, date.Format("2006-01-02"))
}

func doctorPattern(doctorID uuid.UUID) string {
	return fmt.Sprintf("availability:doctor:%s:*", doctorID)
}

// GetSlots returns the cached slot list for a doctor/date, or ok=false on a
// miss. Cache errors count as misses; the caller falls back to the store.
func (c *AvailabilityCache) GetSlots(ctx context.Context, doctorID uuid.UUID, date time.Time, out interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, slotsKey(doctorID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("availability cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logrus.WithError(err).Warn("availability cache entry corrupt, discarding")
		_ = c.client.Del(ctx, slotsKey(doctorID, date)).Err()
		return false
	}
	return true
}

// SetSlots stores the slot list for a doctor/date with the configured TTL.
func (c *AvailabilityCache) SetSlots(ctx context.Context, doctorID uuid.UUID, date time.Time, slots interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		logrus.WithError(err).Warn("availability cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, slotsKey(doctorID, date), raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("availability cache write failed")
	}
}

// InvalidateDoctor drops every cached availability entry for the doctor.
func (c *AvailabilityCache) InvalidateDoctor(ctx context.Context, doctorID uuid.UUID) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, doctorPattern(doctorID), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logrus.WithError(err).Warn("availability cache scan failed")
		return
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			logrus.WithError(err).Warn("availability cache invalidation failed")
		}
	}
}

// Close releases the underlying Redis connection.
func (c *AvailabilityCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
