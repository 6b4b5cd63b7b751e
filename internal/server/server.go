// Package server собирает HTTP API сервера синхронизации
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/listsync/internal/clock"
	"github.com/iudanet/listsync/internal/server/broker"
	"github.com/iudanet/listsync/internal/server/handlers"
	"github.com/iudanet/listsync/internal/server/middleware"
	"github.com/iudanet/listsync/internal/server/storage"
)

// Storage хранилище пользователей и журналов событий
type Storage interface {
	storage.UserStorage
	storage.EventStorage
	handlers.Pinger
}

// Options параметры API
type Options struct {
	Version   string
	JWT       handlers.JWTConfig
	PageLimit int
	KeepAlive time.Duration // пинг SSE-потока; 0: handlers.DefaultKeepAlive
	RateRPS   float64       // 0: без ограничения
	RateBurst int
}

// Server HTTP API: маршруты и цепочка middleware
type Server struct {
	handler http.Handler
	limiter *middleware.RateLimiter
}

const healthPath = "/api/v1/health"

// New создает API поверх хранилища и брокера уведомлений
func New(opts Options, store Storage, b broker.Broker, clk clock.Clock, logger *slog.Logger) *Server {
	authHandler := handlers.NewAuthHandler(logger, store, opts.JWT)
	eventsHandler := handlers.NewEventsHandler(logger, store, b, opts.PageLimit)
	streamHandler := handlers.NewStreamHandler(logger, store, b, opts.PageLimit, opts.KeepAlive)
	healthHandler := handlers.NewHealthHandler(logger, store, opts.Version)

	authMW := middleware.AuthMiddleware(logger, opts.JWT)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)
	mux.Handle("POST /api/v1/events", authMW(http.HandlerFunc(eventsHandler.Push)))
	mux.Handle("GET /api/v1/events", authMW(http.HandlerFunc(eventsHandler.Pull)))
	mux.Handle("GET /api/v1/events/stream", authMW(http.HandlerFunc(streamHandler.Stream)))

	s := &Server{}
	var h http.Handler = mux
	if opts.RateRPS > 0 {
		s.limiter = middleware.NewRateLimiter(opts.RateRPS, opts.RateBurst, 5*time.Minute, clk, logger)
		h = s.limiter.Middleware(h)
	}
	h = middleware.LoggingWithSkip(logger, []string{healthPath})(h)
	s.handler = middleware.RecoveryMiddleware(logger)(h)

	return s
}

// Handler возвращает корневой обработчик
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close останавливает фоновые задачи middleware
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
