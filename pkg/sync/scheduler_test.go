package sync

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscope/pkg/domain"
	"github.com/umputun/feedscope/pkg/sync/mocks"
)

func TestScheduler_StartStop(t *testing.T) {
	var syncRuns int32
	feeds := &mocks.FeedStoreMock{
		GetAllActiveFeedsFunc: func(ctx context.Context) ([]*domain.Feed, error) {
			atomic.AddInt32(&syncRuns, 1)
			return nil, nil
		},
	}

	engine := NewEngine(feeds, &mocks.ArticleStoreMock{}, &mocks.ParserMock{}, nil, Config{})
	scheduler := NewScheduler(engine, time.Hour)

	scheduler.Start(context.Background())

	// the first run fires immediately
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&syncRuns) == 1
	}, time.Second, 10*time.Millisecond)

	scheduler.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&syncRuns), "hour-long ticker never fired")
}

func TestScheduler_PeriodicRuns(t *testing.T) {
	var syncRuns int32
	feeds := &mocks.FeedStoreMock{
		GetAllActiveFeedsFunc: func(ctx context.Context) ([]*domain.Feed, error) {
			atomic.AddInt32(&syncRuns, 1)
			return nil, nil
		},
	}

	engine := NewEngine(feeds, &mocks.ArticleStoreMock{}, &mocks.ParserMock{}, nil, Config{})
	scheduler := NewScheduler(engine, 20*time.Millisecond)

	scheduler.Start(context.Background())

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&syncRuns) >= 3
	}, time.Second, 5*time.Millisecond)

	scheduler.Stop()
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	engine := NewEngine(&mocks.FeedStoreMock{}, &mocks.ArticleStoreMock{}, &mocks.ParserMock{}, nil, Config{})
	scheduler := NewScheduler(engine, time.Minute)

	// must not panic
	scheduler.Stop()
}

func TestNewScheduler_DefaultInterval(t *testing.T) {
	engine := NewEngine(&mocks.FeedStoreMock{}, &mocks.ArticleStoreMock{}, &mocks.ParserMock{}, nil, Config{})
	scheduler := NewScheduler(engine, 0)
	assert.Equal(t, 30*time.Minute, scheduler.interval)
}
