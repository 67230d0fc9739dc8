package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWait_ZeroScaleReturnsImmediately(t *testing.T) {
	start := time.Now()
	assert.NoError(t, New(0).Wait(context.Background(), Login))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_NegativeScaleIsClamped(t *testing.T) {
	assert.Equal(t, 0.0, New(-2).Scale)
}

func TestWait_Sleeps(t *testing.T) {
	start := time.Now()
	assert.NoError(t, New(0.1).Wait(context.Background(), CheckIn))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := New(10).Wait(ctx, Login)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
