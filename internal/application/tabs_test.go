package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabControllerFetchesEachTabOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	controller := NewTabController(func(_ context.Context, tab string) (any, error) {
		calls.Add(1)
		return "payload:" + tab, nil
	})

	for _, tab := range []string{"spending", "temporal", "spending"} {
		value, err := controller.Select(context.Background(), tab)
		require.NoError(t, err)
		assert.Equal(t, "payload:"+tab, value)
	}

	assert.Equal(t, int32(2), calls.Load())
}

func TestTabControllerConcurrentSelectionsShareOneFetch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	controller := NewTabController(func(context.Context, string) (any, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	})

	var wg sync.WaitGroup
	results := make([]any, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := controller.Select(context.Background(), "all")
			assert.NoError(t, err)
			results[i] = value
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, value := range results {
		assert.Equal(t, "shared", value)
	}
}

func TestTabControllerFailedFetchIsRetriedOnReselect(t *testing.T) {
	t.Parallel()

	boom := errors.New("backend down")
	var calls atomic.Int32
	controller := NewTabController(func(context.Context, string) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return "recovered", nil
	})

	_, err := controller.Select(context.Background(), "anomalies")
	require.ErrorIs(t, err, boom)

	value, err := controller.Select(context.Background(), "anomalies")
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTabControllerSelectHonorsContextWhileWaiting(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	controller := NewTabController(func(context.Context, string) (any, error) {
		<-release
		return nil, nil
	})

	started := make(chan struct{})
	go func() {
		close(started)
		_, _ = controller.Select(context.Background(), "slow")
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := controller.Select(ctx, "slow")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTabControllerPeek(t *testing.T) {
	t.Parallel()

	controller := NewTabController(func(_ context.Context, tab string) (any, error) {
		return "payload:" + tab, nil
	})

	_, ok := controller.Peek("behavioral")
	assert.False(t, ok)

	_, err := controller.Select(context.Background(), "behavioral")
	require.NoError(t, err)

	value, ok := controller.Peek("behavioral")
	require.True(t, ok)
	assert.Equal(t, "payload:behavioral", value)
}
