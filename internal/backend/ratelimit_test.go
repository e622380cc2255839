package backend_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/searchit/internal/backend"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 500,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			daily: 500,
			calls: 5,
		},
		{
			name:  "no daily cap when limit is zero",
			rate:  1000,
			burst: 20,
			daily: 0,
			calls: 20,
		},
		{
			name:    "rejects when daily limit reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := backend.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, lastErr, backend.ErrDailyLimitReached)
				assert.Equal(t, int64(0), rl.Remaining())
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_Remaining(t *testing.T) {
	t.Parallel()

	capped := backend.NewRateLimiter(100, 10, 3)
	assert.Equal(t, int64(3), capped.Remaining())
	require.NoError(t, capped.Wait(context.Background()))
	assert.Equal(t, int64(2), capped.Remaining())
	assert.Equal(t, int64(1), capped.DailyCount())

	uncapped := backend.NewRateLimiter(100, 10, 0)
	require.NoError(t, uncapped.Wait(context.Background()))
	assert.Equal(t, int64(-1), uncapped.Remaining())
}

func TestRateLimiter_WindowRollover(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	current := start

	rl := backend.NewRateLimiter(
		100, 10, 2,
		backend.WithRateLimiterNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return current
		}),
	)
	assert.Equal(t, start.Add(24*time.Hour), rl.ResetAt())

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), backend.ErrDailyLimitReached)

	mu.Lock()
	current = start.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
	assert.Equal(t, start.Add(49*time.Hour), rl.ResetAt())
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := backend.NewRateLimiter(0.1, 1, 100)

	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}
