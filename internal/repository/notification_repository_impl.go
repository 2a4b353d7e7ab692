package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"medicare-api/internal/domain/entity"
	domainRepo "medicare-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisNotificationKeyPrefix prefixes the per-user notification hash.
// Hash field = notification ID, value = JSON document.
const RedisNotificationKeyPrefix = "notifications:user:"

type notificationRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewNotificationRepository(redisClient *redis.Client, ttl time.Duration) domainRepo.NotificationRepository {
	return &notificationRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func notificationKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", RedisNotificationKeyPrefix, userID)
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	return r.save(ctx, notification)
}

func (r *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	return r.save(ctx, notification)
}

// save writes the document and refreshes the hash TTL in one transaction.
func (r *notificationRepository) save(ctx context.Context, notification *entity.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	key := notificationKey(notification.UserID)
	pipe := r.redisClient.TxPipeline()
	pipe.HSet(ctx, key, notification.ID.String(), payload)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save notification %s: %w", notification.ID, err)
	}
	return nil
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	values, err := r.redisClient.HGetAll(ctx, notificationKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, 0, len(values))
	for id, raw := range values {
		var n entity.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, fmt.Errorf("decode notification %s: %w", id, err)
		}
		notifications = append(notifications, n)
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *notificationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	raw, err := r.redisClient.HGet(ctx, notificationKey(userID), id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var n entity.Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return nil, fmt.Errorf("decode notification %s: %w", id, err)
	}
	return &n, nil
}
