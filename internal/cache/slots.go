package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NovaLinkServices/salon-scheduler/internal/config"
	"github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
)

const slotsTTL = 5 * time.Minute

// SlotCache keeps generated day slots in Redis so repeated availability
// lookups on a busy booking page do not re-hit Postgres. Entries are keyed by
// staff member, calendar day and service; every appointment mutation drops the
// whole staff day, since any booking stales the slot lists of every service.
type SlotCache struct {
	client *redis.Client
}

func New(cfg *config.Config) (*SlotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &SlotCache{client: client}, nil
}

// Keys put staff and day first so one booking can drop every cached service
// for that staff member's day with a single pattern delete. Conflicts are per
// staff, so a booking through one service stales the slot lists of all of them.
func slotsKey(serviceID, staffID uint, day time.Time) string {
	return fmt.Sprintf("%sservice:%d", staffDayPrefix(staffID, day), serviceID)
}

func staffDayPrefix(staffID uint, day time.Time) string {
	return fmt.Sprintf("slots:staff:%d:%s:", staffID, day.Format("2006-01-02"))
}

func (c *SlotCache) GetSlots(
	ctx context.Context,
	serviceID uint,
	staffID uint,
	day time.Time,
) ([]scheduling.TimeSlot, bool) {

	raw, err := c.client.Get(ctx, slotsKey(serviceID, staffID, day)).Result()
	if err != nil {
		return nil, false
	}

	var slots []scheduling.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) SetSlots(
	ctx context.Context,
	serviceID uint,
	staffID uint,
	day time.Time,
	slots []scheduling.TimeSlot,
) {

	b, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.client.Set(ctx, slotsKey(serviceID, staffID, day), b, slotsTTL)
}

// Invalidate drops every cached slot list for a staff member's day, across
// all services. Called after every booking, reschedule, cancellation and
// deletion. Keys carry a short TTL, so the pattern scan stays tiny.
func (c *SlotCache) Invalidate(
	ctx context.Context,
	staffID uint,
	day time.Time,
) {
	keys, err := c.client.Keys(ctx, staffDayPrefix(staffID, day)+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
