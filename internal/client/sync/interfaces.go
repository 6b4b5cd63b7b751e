package sync

import (
	"context"

	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport
//go:generate moq -out realtime_mock.go . Realtime
//go:generate moq -out token_mock.go . TokenSource
//go:generate moq -out eventlog_mock.go . EventLog

// Transport обмен событиями с сервером
type Transport interface {
	// PushEvents отправляет пакет событий и возвращает подтверждения с seq
	PushEvents(ctx context.Context, token string, events []models.Event) ([]api.Ack, error)

	// PullEvents возвращает до limit событий с seq > since по возрастанию seq
	PullEvents(ctx context.Context, token string, since int64, limit int) ([]models.Event, error)
}

// Realtime поток событий других клиентов
type Realtime interface {
	// Subscribe блокируется, пока поток открыт, вызывая handler для каждого
	// события. connected вызывается после установки соединения.
	// Возвращает nil при отмене ctx.
	Subscribe(ctx context.Context, token string, since int64, connected func(), handler func(models.Event)) error
}

// TokenSource выдает действующий токен доступа
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// EventLog часть журнала событий, с которой работает синхронизация
type EventLog interface {
	Unpushed() []models.Event
	HasUnpushed() bool
	MarkPushed(ctx context.Context, acks map[string]int64) error
	AppendRemote(ctx context.Context, events []models.Event) ([]models.Event, error)
	// Compact сжимает журнал; история undo учитывается реализацией
	Compact(ctx context.Context) (int, error)
}

// CursorStore хранение курсора синхронизации
type CursorStore interface {
	GetCursor(ctx context.Context) (int64, error)
	SaveCursor(ctx context.Context, seq int64) error
}
