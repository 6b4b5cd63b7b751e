package broker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	m, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	rc := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return m, rc
}

func TestRedis_NotifyAcrossInstances(t *testing.T) {
	m, rc := setupRedis(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first := NewRedis(rc, "", logger)
	second := NewRedis(rc, "", logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{}, 2)
	for _, b := range []*Redis{first, second} {
		go func() {
			b.Run(ctx)
			done <- struct{}{}
		}()
	}

	// ждем, пока оба экземпляра подпишутся
	require.Eventually(t, func() bool {
		return m.PubSubNumSub(DefaultChannel)[DefaultChannel] == 2
	}, time.Second, 10*time.Millisecond)

	ch, unsubscribe := second.Subscribe("alice")
	defer unsubscribe()
	other, unsubscribeOther := second.Subscribe("bob")
	defer unsubscribeOther()

	require.NoError(t, first.Notify(context.Background(), "alice"))

	assert.True(t, received(ch))
	assert.True(t, drained(other))

	cancel()
	for range 2 {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not exit")
		}
	}
}

func TestRedis_IgnoresMalformedPayload(t *testing.T) {
	m, rc := setupRedis(t)
	b := NewRedis(rc, "custom", slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	require.Eventually(t, func() bool {
		return m.PubSubNumSub("custom")["custom"] == 1
	}, time.Second, 10*time.Millisecond)

	ch, unsubscribe := b.Subscribe("alice")
	defer unsubscribe()

	m.Publish("custom", "not json")
	require.NoError(t, b.Notify(context.Background(), "alice"))

	assert.True(t, received(ch))
}
