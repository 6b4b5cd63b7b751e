// Package sync синхронизирует локальный журнал событий с сервером.
//
// Цикл синхронизации отправляет неотправленные события одним пакетом,
// затем постранично забирает чужие события начиная с курсора. Повторные
// запуски во время цикла объединяются в один последующий цикл. Ошибки
// цикла приводят к повтору с экспоненциальной задержкой.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/listsync/internal/clock"
	"github.com/iudanet/listsync/internal/models"
)

var (
	// ErrDisabled синхронизация не включена
	ErrDisabled = errors.New("sync is disabled")
	// ErrOffline нет подключения к сети
	ErrOffline = errors.New("sync is offline")
)

const (
	DefaultPageSize       = 500
	DefaultMaxPages       = 10
	DefaultDebounce       = time.Second
	DefaultRetryBase      = 5 * time.Second
	DefaultRetryMaxDelay  = time.Minute
	DefaultMaxRetries     = 5
	DefaultReconnectDelay = 3 * time.Second
)

// Config параметры синхронизации
type Config struct {
	ClientID       string
	ServerURL      string // пусто: синхронизация не настроена
	TestMode       bool
	PageSize       int
	MaxPages       int
	Debounce       time.Duration
	RetryBase      time.Duration
	RetryMaxDelay  time.Duration
	MaxRetries     uint64
	ReconnectDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.Debounce <= 0 {
		c.Debounce = DefaultDebounce
	}
	if c.RetryBase <= 0 {
		c.RetryBase = DefaultRetryBase
	}
	if c.RetryMaxDelay <= 0 {
		c.RetryMaxDelay = DefaultRetryMaxDelay
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.ReconnectDelay <= 0 {
		c.ReconnectDelay = DefaultReconnectDelay
	}
	return c
}

// SyncResult contains sync operation results
type SyncResult struct {
	Pushed    int // количество отправленных на сервер событий
	Pulled    int // количество полученных с сервера событий
	Applied   int // количество новых событий других клиентов
	Compacted int // количество событий, удаленных сжатием
	// More на сервере остались события сверх лимита страниц
	More bool
}

func (r *SyncResult) add(o *SyncResult) {
	if o == nil {
		return
	}
	r.Pushed += o.Pushed
	r.Pulled += o.Pulled
	r.Applied += o.Applied
	r.Compacted += o.Compacted
	r.More = o.More
}

// Service движок синхронизации одного клиента
type Service struct {
	log       EventLog
	transport Transport
	realtime  Realtime
	tokens    TokenSource
	cursors   CursorStore
	clock     clock.Clock
	logger    *slog.Logger

	backoff       retry.Backoff
	retryTimer    clock.Timer
	debounceTimer clock.Timer
	lastErr       error
	stopRealtime  context.CancelFunc
	realtimeDone  chan struct{}

	queue      []models.Event // события realtime, отложенные на время редактирования
	listeners  []func(Status)
	lastStatus Status
	cfg        Config
	cursor     int64
	retryCount int
	nextRetry  time.Duration
	mu         sync.Mutex

	enabled           bool
	manual            bool
	online            bool
	syncing           bool
	pending           bool
	editing           bool
	exhausted         bool
	realtimeConnected bool
}

// NewService creates a new sync service. realtime может быть nil.
func NewService(
	cfg Config,
	log EventLog,
	transport Transport,
	realtime Realtime,
	tokens TokenSource,
	cursors CursorStore,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		cfg:        cfg.withDefaults(),
		log:        log,
		transport:  transport,
		realtime:   realtime,
		tokens:     tokens,
		cursors:    cursors,
		clock:      clk,
		logger:     logger,
		online:     true,
		lastStatus: Status{State: StateDisabled},
	}
}

// Enable включает синхронизацию, подписывается на поток событий и сразу
// планирует цикл. Возвращает false, если сервер не настроен или включен
// тестовый режим.
func (s *Service) Enable(ctx context.Context) bool {
	return s.enable(ctx, true)
}

// EnableManual включает синхронизацию без фоновой работы: без потока
// событий и без таймеров, циклы выполняются только через SyncNow.
// Используется разовыми командами.
func (s *Service) EnableManual(ctx context.Context) bool {
	return s.enable(ctx, false)
}

func (s *Service) enable(ctx context.Context, background bool) bool {
	if s.cfg.ServerURL == "" || s.cfg.TestMode {
		s.logger.Info("Sync disabled",
			"configured", s.cfg.ServerURL != "",
			"test_mode", s.cfg.TestMode)
		return false
	}

	cursor, err := s.cursors.GetCursor(ctx)
	if err != nil {
		s.logger.Warn("Failed to get sync cursor, using 0", "error", err)
		cursor = 0
	}

	s.mu.Lock()
	if s.enabled {
		s.mu.Unlock()
		return true
	}
	s.enabled = true
	s.manual = !background
	s.cursor = cursor
	if background && s.realtime != nil {
		rtCtx, cancel := context.WithCancel(context.Background())
		s.stopRealtime = cancel
		s.realtimeDone = make(chan struct{})
		go s.runRealtime(rtCtx, s.realtimeDone)
	}
	s.mu.Unlock()

	s.logger.Info("Sync enabled", "server", s.cfg.ServerURL, "cursor", cursor, "background", background)
	s.notifyStatus()
	if background {
		s.clock.AfterFunc(0, s.trigger)
	}
	return true
}

// Disable останавливает таймеры и поток событий
func (s *Service) Disable() {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return
	}
	s.enabled = false
	s.manual = false
	s.pending = false
	stopTimer(&s.retryTimer)
	stopTimer(&s.debounceTimer)
	cancel, done := s.stopRealtime, s.realtimeDone
	s.stopRealtime, s.realtimeDone = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	s.notifyStatus()
}

// SyncNow выполняет цикл синхронизации немедленно. Явный запуск сбрасывает
// счетчик повторов. Если цикл уже идет, запуск объединяется с ним и
// возвращает nil результат. Цикл забирает не больше MaxPages страниц;
// при More в ручном режиме вызывающий повторяет SyncNow сам.
func (s *Service) SyncNow(ctx context.Context) (*SyncResult, error) {
	s.mu.Lock()
	s.resetRetryLocked()
	s.mu.Unlock()
	return s.run(ctx)
}

// RequestSync планирует цикл после паузы Debounce. Повторный вызов
// переносит срабатывание и отменяет запланированный повтор.
func (s *Service) RequestSync() {
	s.mu.Lock()
	if !s.enabled || s.manual {
		s.mu.Unlock()
		return
	}
	s.resetRetryLocked()
	stopTimer(&s.debounceTimer)
	s.debounceTimer = s.clock.AfterFunc(s.cfg.Debounce, s.debounced)
	s.mu.Unlock()
	s.notifyStatus()
}

// SetOnline сообщает о смене сетевого подключения.
// Восстановление связи сбрасывает повторы и запускает цикл.
func (s *Service) SetOnline(online bool) {
	s.mu.Lock()
	was := s.online
	s.online = online
	if online && !was && s.enabled && !s.manual {
		s.resetRetryLocked()
		s.clock.AfterFunc(0, s.trigger)
	}
	s.mu.Unlock()
	s.notifyStatus()
}

// SetEditing включает отложенное применение событий realtime.
// При выходе из редактирования очередь применяется.
func (s *Service) SetEditing(ctx context.Context, editing bool) error {
	s.mu.Lock()
	s.editing = editing
	var queued []models.Event
	if !editing {
		queued, s.queue = s.queue, nil
	}
	s.mu.Unlock()

	if len(queued) == 0 {
		return nil
	}
	_, err := s.apply(ctx, queued)
	return err
}

// HandleRealtimeEvent принимает одно событие из потока. Во время
// редактирования событие ставится в очередь.
func (s *Service) HandleRealtimeEvent(ctx context.Context, e models.Event) error {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return nil
	}
	if s.editing {
		s.queue = append(s.queue, e.Clone())
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	_, err := s.apply(ctx, []models.Event{e})
	return err
}

// Status возвращает текущее видимое состояние
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

// OnStatus регистрирует обработчик смены состояния
func (s *Service) OnStatus(fn func(Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Cursor возвращает максимальный примененный seq
func (s *Service) Cursor() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Queued возвращает количество отложенных событий realtime
func (s *Service) Queued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// LastError возвращает ошибку последнего неуспешного цикла
func (s *Service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Service) trigger() {
	if _, err := s.run(context.Background()); err != nil && !errors.Is(err, ErrDisabled) {
		s.logger.Debug("Scheduled sync failed", "error", err)
	}
}

func (s *Service) debounced() {
	s.mu.Lock()
	s.debounceTimer = nil
	s.mu.Unlock()
	s.trigger()
}

func (s *Service) retryNow() {
	s.mu.Lock()
	s.retryTimer = nil
	s.mu.Unlock()
	s.trigger()
}

func (s *Service) run(ctx context.Context) (*SyncResult, error) {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return nil, ErrDisabled
	}
	if !s.online {
		s.mu.Unlock()
		return nil, ErrOffline
	}
	if s.syncing {
		s.pending = true
		s.mu.Unlock()
		return nil, nil
	}
	s.syncing = true
	stopTimer(&s.retryTimer)
	s.mu.Unlock()
	s.notifyStatus()

	total := &SyncResult{}
	var err error
	for {
		var res *SyncResult
		res, err = s.cycle(ctx)
		total.add(res)

		s.mu.Lock()
		if err != nil {
			s.pending = false
			s.lastErr = err
			s.scheduleRetryLocked()
			break
		}
		s.lastErr = nil
		s.resetRetryLocked()
		if res.More {
			// остаток забирает следующий цикл, а не этот вызов
			s.pending = false
			if s.enabled && !s.manual {
				s.clock.AfterFunc(0, s.trigger)
			}
			break
		}
		if !s.pending || !s.enabled {
			break
		}
		s.pending = false
		s.mu.Unlock()
	}
	s.syncing = false
	s.mu.Unlock()
	s.notifyStatus()

	if err == nil {
		s.logger.Info("Synchronization completed",
			"pushed", total.Pushed,
			"pulled", total.Pulled,
			"applied", total.Applied,
			"compacted", total.Compacted)
	}
	return total, err
}

func (s *Service) cycle(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to get access token: %w", err)
	}

	if unpushed := s.log.Unpushed(); len(unpushed) > 0 {
		acks, err := s.transport.PushEvents(ctx, token, unpushed)
		if err != nil {
			return result, fmt.Errorf("push failed: %w", err)
		}
		seqs := make(map[string]int64, len(acks))
		for _, a := range acks {
			seqs[a.ID] = a.Seq
		}
		if err := s.log.MarkPushed(ctx, seqs); err != nil {
			return result, fmt.Errorf("failed to mark events pushed: %w", err)
		}
		result.Pushed = len(acks)
	}

	for page := 0; page < s.cfg.MaxPages; page++ {
		events, err := s.transport.PullEvents(ctx, token, s.Cursor(), s.cfg.PageSize)
		if err != nil {
			return result, fmt.Errorf("pull failed: %w", err)
		}
		result.Pulled += len(events)

		applied, err := s.apply(ctx, events)
		if err != nil {
			return result, err
		}
		result.Applied += applied

		if len(events) < s.cfg.PageSize {
			break
		}
		if page == s.cfg.MaxPages-1 {
			result.More = true
			s.logger.Debug("Pull page limit reached", "pages", s.cfg.MaxPages)
		}
	}

	if !result.More && !s.log.HasUnpushed() {
		n, err := s.log.Compact(ctx)
		if err != nil {
			// сжатие необязательно, цикл успешен
			s.logger.Warn("Failed to compact event log", "error", err)
		}
		result.Compacted = n
	}

	return result, nil
}

// apply добавляет события других клиентов и сдвигает курсор до
// максимального seq, включая собственные события.
func (s *Service) apply(ctx context.Context, events []models.Event) (int, error) {
	var maxSeq int64
	accepted := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Seq != nil && *e.Seq > maxSeq {
			maxSeq = *e.Seq
		}
		if e.ClientID == s.cfg.ClientID {
			continue
		}
		accepted = append(accepted, e)
	}

	var added []models.Event
	if len(accepted) > 0 {
		var err error
		added, err = s.log.AppendRemote(ctx, accepted)
		if err != nil {
			return 0, fmt.Errorf("failed to append remote events: %w", err)
		}
	}

	s.advanceCursor(ctx, maxSeq)
	return len(added), nil
}

func (s *Service) advanceCursor(ctx context.Context, seq int64) {
	s.mu.Lock()
	if seq <= s.cursor {
		s.mu.Unlock()
		return
	}
	s.cursor = seq
	s.mu.Unlock()

	if err := s.cursors.SaveCursor(ctx, seq); err != nil {
		// курсор восстановится повторной загрузкой, события идемпотентны
		s.logger.Warn("Failed to save sync cursor", "error", err, "cursor", seq)
	}
}

func (s *Service) runRealtime(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		token, err := s.tokens.Token(ctx)
		if err == nil {
			err = s.realtime.Subscribe(ctx, token, s.Cursor(), s.realtimeUp, func(e models.Event) {
				if err := s.HandleRealtimeEvent(ctx, e); err != nil {
					s.logger.Warn("Failed to apply realtime event", "event_id", e.ID, "error", err)
				}
			})
		}
		s.setRealtimeConnected(false)

		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("Realtime stream closed, reconnecting",
			"error", err,
			"delay", s.cfg.ReconnectDelay)
		if !s.sleep(ctx, s.cfg.ReconnectDelay) {
			return
		}
	}
}

// realtimeUp догоняет пропущенное за время разрыва обычным циклом
func (s *Service) realtimeUp() {
	s.setRealtimeConnected(true)
	s.clock.AfterFunc(0, s.trigger)
}

func (s *Service) setRealtimeConnected(connected bool) {
	s.mu.Lock()
	s.realtimeConnected = connected
	s.mu.Unlock()
	s.notifyStatus()
}

func (s *Service) sleep(ctx context.Context, d time.Duration) bool {
	ch := make(chan struct{})
	t := s.clock.AfterFunc(d, func() { close(ch) })
	select {
	case <-ctx.Done():
		t.Stop()
		return false
	case <-ch:
		return true
	}
}

func (s *Service) newBackoff() retry.Backoff {
	b := retry.NewExponential(s.cfg.RetryBase)
	b = retry.WithCappedDuration(s.cfg.RetryMaxDelay, b)
	return retry.WithMaxRetries(s.cfg.MaxRetries, b)
}

func (s *Service) scheduleRetryLocked() {
	if s.manual {
		// без фоновых повторов: следующий цикл только по SyncNow
		s.exhausted = true
		return
	}
	if s.backoff == nil {
		s.backoff = s.newBackoff()
	}
	delay, stop := s.backoff.Next()
	if stop {
		s.exhausted = true
		s.nextRetry = 0
		s.logger.Warn("Sync retries exhausted", "attempts", s.retryCount, "error", s.lastErr)
		return
	}

	s.retryCount++
	s.nextRetry = delay
	s.retryTimer = s.clock.AfterFunc(delay, s.retryNow)
	s.logger.Warn("Sync failed, retry scheduled",
		"attempt", s.retryCount,
		"delay", delay,
		"error", s.lastErr)
}

func (s *Service) resetRetryLocked() {
	stopTimer(&s.retryTimer)
	s.backoff = nil
	s.retryCount = 0
	s.nextRetry = 0
	s.exhausted = false
}

func (s *Service) statusLocked() Status {
	return DecideStatus(StatusInput{
		Enabled:           s.enabled,
		Online:            s.online,
		RealtimeConnected: s.realtime == nil || s.manual || s.realtimeConnected,
		Syncing:           s.syncing,
		RetryPending:      s.retryTimer != nil,
		Exhausted:         s.exhausted,
		RetryCount:        s.retryCount,
		NextRetry:         s.nextRetry,
	})
}

func (s *Service) notifyStatus() {
	s.mu.Lock()
	st := s.statusLocked()
	if st == s.lastStatus {
		s.mu.Unlock()
		return
	}
	s.lastStatus = st
	listeners := make([]func(Status), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}

func stopTimer(t *clock.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
