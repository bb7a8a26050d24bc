// Package activity appends immutable audit entries for every state-changing
// action. The log has no retention limit and is read newest-first.
package activity

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"eventmanager/internal/billing"
	"eventmanager/internal/models"
)

// Channel carries freshly recorded entries to live dashboard subscribers.
const Channel = "activity_events"

// EntryStore persists log entries.
type EntryStore interface {
	Append(ctx context.Context, entry models.ActivityLog) error
}

// Recorder builds and appends audit entries. Recording is best-effort: a
// failed append or publish is logged and never fails the action that
// produced it.
type Recorder struct {
	store EntryStore
	clock billing.Clock
	redis *redis.Client
}

// NewRecorder wires a recorder. redisClient may be nil, which disables the
// live fan-out.
func NewRecorder(store EntryStore, clock billing.Clock, redisClient *redis.Client) *Recorder {
	return &Recorder{store: store, clock: clock, redis: redisClient}
}

// Record appends one entry attributed to actor.
func (r *Recorder) Record(ctx context.Context, actor models.UserProfile, action models.ActionType, description string) {
	entry := models.ActivityLog{
		ID:          uuid.NewString(),
		UserID:      actor.Email,
		UserName:    actor.Name,
		UserRole:    actor.Role,
		ActionType:  action,
		Description: description,
		Timestamp:   r.clock.Now(),
	}

	if err := r.store.Append(ctx, entry); err != nil {
		log.Println("[ACTIVITY] [ERROR] append failed:", err)
		return
	}

	if r.redis == nil {
		return
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		log.Println("[ACTIVITY] [ERROR] marshal failed:", err)
		return
	}
	if err := r.redis.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Println("[ACTIVITY] [ERROR] publish failed:", err)
	}
}
