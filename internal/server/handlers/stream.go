package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/listsync/internal/server/broker"
	"github.com/iudanet/listsync/internal/server/storage"
)

// DefaultKeepAlive период комментариев-пингов в открытом потоке
const DefaultKeepAlive = 25 * time.Second

// StreamHandler отдает события пользователя по SSE
type StreamHandler struct {
	responder
	storage   storage.EventStorage
	broker    broker.Broker
	pageLimit int
	keepAlive time.Duration
}

// NewStreamHandler создает SSE handler
func NewStreamHandler(logger *slog.Logger, store storage.EventStorage, b broker.Broker, pageLimit int, keepAlive time.Duration) *StreamHandler {
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAlive
	}
	return &StreamHandler{
		responder: responder{logger: logger},
		storage:   store,
		broker:    b,
		pageLimit: pageLimit,
		keepAlive: keepAlive,
	}
}

// Stream обрабатывает GET /api/v1/events/stream?since=N.
// Сначала отдает накопленные события после since, затем новые по мере
// поступления. Каждое событие отправляется один раз и по возрастанию seq.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := parseSince(r)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rc := http.NewResponseController(w)
	// подписка до чтения журнала: иначе можно пропустить уведомление
	notify, unsubscribe := h.broker.Subscribe(userID)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	// поток живет дольше WriteTimeout сервера
	_ = rc.SetWriteDeadline(time.Time{})
	if err := rc.Flush(); err != nil {
		h.logger.ErrorContext(ctx, "streaming unsupported", slog.Any("error", err))
		return
	}

	h.logger.InfoContext(ctx, "stream opened", slog.String("user_id", userID), slog.Int64("since", cursor))
	defer h.logger.InfoContext(ctx, "stream closed", slog.String("user_id", userID))

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		if cursor, err = h.catchUp(w, r, userID, cursor); err != nil {
			if ctx.Err() == nil {
				h.logger.WarnContext(ctx, "stream write failed", slog.Any("error", err))
			}
			return
		}
		if err := rc.Flush(); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-notify:
		case <-ticker.C:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return
			}
		}
	}
}

// catchUp дописывает в поток все события после cursor и возвращает новый курсор
func (h *StreamHandler) catchUp(w io.Writer, r *http.Request, userID string, cursor int64) (int64, error) {
	for {
		events, err := h.storage.EventsSince(r.Context(), userID, cursor, h.pageLimit)
		if err != nil {
			return cursor, fmt.Errorf("reading events: %w", err)
		}

		for _, ev := range events {
			data, err := json.Marshal(ev)
			if err != nil {
				return cursor, fmt.Errorf("encoding event %s: %w", ev.ID, err)
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return cursor, err
			}
		}

		cursor = lastSeq(events, cursor)
		if len(events) < h.pageLimit {
			return cursor, nil
		}
	}
}
