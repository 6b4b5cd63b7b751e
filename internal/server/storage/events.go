package storage

import (
	"context"

	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/pkg/api"
)

// AppendResult итог записи пакета событий
type AppendResult struct {
	// Acks подтверждения для каждого события пакета в исходном порядке,
	// включая уже известные серверу события
	Acks []api.Ack
	// Inserted впервые сохраненные события с присвоенным seq
	Inserted []models.Event
}

// EventStorage журнал событий пользователя с монотонным seq
type EventStorage interface {
	// AppendEvents сохраняет пакет в одной транзакции. Повторная отправка
	// события с тем же id не создает копию и возвращает прежний seq.
	AppendEvents(ctx context.Context, userID string, events []models.Event) (*AppendResult, error)

	// EventsSince возвращает до limit событий с seq > since по возрастанию seq
	EventsSince(ctx context.Context, userID string, since int64, limit int) ([]models.Event, error)
}
