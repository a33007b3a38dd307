package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AK301382/maser/internal/services"
)

func TestPollReplacesStateWholesale(t *testing.T) {
	var batch atomic.Value
	batch.Store([]services.NotificationView{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}})

	fetch := func(ctx context.Context) ([]services.NotificationView, error) {
		return batch.Load().([]services.NotificationView), nil
	}

	var updates int32
	p := NewPoller(fetch, func([]services.NotificationView) { atomic.AddInt32(&updates, 1) })

	require.NoError(t, p.Poll(context.Background()))
	require.Len(t, p.State(), 2)
	require.Equal(t, 2, p.UnreadCount())

	// Next poll replaces, never merges.
	batch.Store([]services.NotificationView{{ID: 3, Title: "third", Read: true}})
	require.NoError(t, p.Poll(context.Background()))
	require.Len(t, p.State(), 1)
	require.Equal(t, uint(3), p.State()[0].ID)
	require.Zero(t, p.UnreadCount())

	require.EqualValues(t, 2, atomic.LoadInt32(&updates))
}

func TestPollDiscardsStaleInFlightResult(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	fetch := func(ctx context.Context) ([]services.NotificationView, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(firstStarted)
			<-release // stall the first poll in flight
			return []services.NotificationView{{ID: 1, Title: "stale"}}, nil
		}
		return []services.NotificationView{{ID: 2, Title: "fresh"}}, nil
	}

	p := NewPoller(fetch, nil)

	done := make(chan error, 1)
	go func() { done <- p.Poll(context.Background()) }()
	<-firstStarted

	// A newer poll is issued and completes while the first is in flight.
	require.NoError(t, p.Poll(context.Background()))
	require.Equal(t, uint(2), p.State()[0].ID)

	close(release)
	require.NoError(t, <-done)

	// The stale result must not have overwritten the fresh one.
	require.Len(t, p.State(), 1)
	require.Equal(t, uint(2), p.State()[0].ID)
}

func TestPollPropagatesFetchError(t *testing.T) {
	sentinel := errors.New("network down")
	p := NewPoller(func(ctx context.Context) ([]services.NotificationView, error) {
		return nil, sentinel
	}, nil)

	err := p.Poll(context.Background())
	require.ErrorIs(t, err, sentinel)
	require.Empty(t, p.State())
}

func TestRunStopsOnCancel(t *testing.T) {
	var calls int32
	p := NewPoller(func(ctx context.Context) ([]services.NotificationView, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}, nil)
	p.SetInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(stopped)
	}()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 2
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}
