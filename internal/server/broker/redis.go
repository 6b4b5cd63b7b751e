package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel канал Redis для уведомлений
const DefaultChannel = "listsync:events"

type notification struct {
	UserID string `json:"userId"`
}

// Redis брокер для нескольких экземпляров сервера: уведомления идут
// через pub/sub, локальным подписчикам их раздает Memory
type Redis struct {
	local   *Memory
	client  *redis.Client
	logger  *slog.Logger
	channel string
	retry   time.Duration
}

// NewRedis создает брокер поверх клиента Redis. Доставка начинается после Run.
func NewRedis(client *redis.Client, channel string, logger *slog.Logger) *Redis {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Redis{
		local:   NewMemory(),
		client:  client,
		logger:  logger,
		channel: channel,
		retry:   time.Second,
	}
}

// Subscribe регистрирует локального подписчика
func (b *Redis) Subscribe(userID string) (<-chan struct{}, func()) {
	return b.local.Subscribe(userID)
}

// Notify публикует уведомление для всех экземпляров, включая текущий
func (b *Redis) Notify(ctx context.Context, userID string) error {
	payload, err := json.Marshal(notification{UserID: userID})
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Run читает канал Redis до отмены ctx, переподключаясь при обрыве
func (b *Redis) Run(ctx context.Context) {
	for {
		b.listen(ctx)
		if ctx.Err() != nil {
			return
		}

		b.logger.WarnContext(ctx, "pubsub channel closed, reconnecting", "channel", b.channel)
		select {
		case <-ctx.Done():
			return
		case <-time.After(b.retry):
		}
	}
}

func (b *Redis) listen(ctx context.Context) {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close() //nolint:errcheck

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var n notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil || n.UserID == "" {
				b.logger.ErrorContext(ctx, "unable to parse notification", "payload", msg.Payload, "error", err)
				continue
			}
			_ = b.local.Notify(ctx, n.UserID)
		}
	}
}
