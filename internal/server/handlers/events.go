package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/server/broker"
	"github.com/iudanet/listsync/internal/server/storage"
	"github.com/iudanet/listsync/pkg/api"
)

// EventsHandler принимает и отдает события журнала пользователя
type EventsHandler struct {
	responder
	storage   storage.EventStorage
	broker    broker.Broker
	pageLimit int
}

// NewEventsHandler создает handler событий. pageLimit ограничивает размер страницы pull.
func NewEventsHandler(logger *slog.Logger, store storage.EventStorage, b broker.Broker, pageLimit int) *EventsHandler {
	return &EventsHandler{
		responder: responder{logger: logger},
		storage:   store,
		broker:    b,
		pageLimit: pageLimit,
	}
}

// Push обрабатывает POST /api/v1/events.
// Повторная отправка уже принятых событий возвращает их прежний seq.
func (h *EventsHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.PushRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode push request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Events) == 0 {
		h.sendJSON(w, api.PushResponse{Acks: []api.Ack{}}, http.StatusOK)
		return
	}

	res, err := h.storage.AppendEvents(ctx, userID, req.Events)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidEvent) {
			h.logger.WarnContext(ctx, "rejected event batch", slog.String("user_id", userID), slog.Any("error", err))
			h.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to append events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if len(res.Inserted) > 0 {
		if err := h.broker.Notify(ctx, userID); err != nil {
			// события уже сохранены, потоки догонят при следующем уведомлении
			h.logger.WarnContext(ctx, "failed to notify subscribers", slog.Any("error", err))
		}
	}

	h.logger.InfoContext(ctx, "events pushed",
		slog.String("user_id", userID),
		slog.Int("received", len(req.Events)),
		slog.Int("inserted", len(res.Inserted)))

	h.sendJSON(w, api.PushResponse{Acks: res.Acks}, http.StatusOK)
}

// Pull обрабатывает GET /api/v1/events?since=N&limit=M
func (h *EventsHandler) Pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	since, err := parseSince(r)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := h.pageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.sendError(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = min(n, h.pageLimit)
	}

	events, err := h.storage.EventsSince(ctx, userID, since, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get events", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	h.logger.DebugContext(ctx, "events pulled",
		slog.String("user_id", userID),
		slog.Int64("since", since),
		slog.Int("count", len(events)))

	h.sendJSON(w, api.PullResponse{
		Events: events,
		Cursor: lastSeq(events, since),
		More:   len(events) == limit,
	}, http.StatusOK)
}

func parseSince(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0, nil
	}
	since, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || since < 0 {
		return 0, errors.New("invalid since parameter")
	}
	return since, nil
}

// lastSeq возвращает seq последнего события или исходный курсор
func lastSeq(events []models.Event, since int64) int64 {
	if n := len(events); n > 0 && events[n-1].Seq != nil {
		return *events[n-1].Seq
	}
	return since
}
