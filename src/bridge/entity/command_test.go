package entity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOutcome(t *testing.T) {
	t.Run("zero value is a resolved negative outcome", func(t *testing.T) {
		var o Outcome
		assert.False(t, o.Wait(context.Background()))
		select {
		case <-o.Done():
		default:
			t.Fatal("zero outcome should be done")
		}
	})

	t.Run("resolved outcome", func(t *testing.T) {
		assert.True(t, ResolvedOutcome(true).Wait(context.Background()))
		assert.False(t, ResolvedOutcome(false).Wait(context.Background()))
	})

	t.Run("first resolution wins", func(t *testing.T) {
		o, resolve := NewOutcome()
		assert.False(t, o.Value())
		resolve(true)
		resolve(false)
		assert.True(t, o.Value())
		assert.True(t, o.Wait(context.Background()))
	})

	t.Run("resolved from another goroutine", func(t *testing.T) {
		o, resolve := NewOutcome()
		go func() {
			time.Sleep(10 * time.Millisecond)
			resolve(true)
		}()
		assert.True(t, o.Wait(context.Background()))
	})

	t.Run("ended context yields false", func(t *testing.T) {
		o, _ := NewOutcome()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.False(t, o.Wait(ctx))
	})
}

func TestChannelStateString(t *testing.T) {
	tests := []struct {
		state ChannelState
		want  string
	}{
		{ChannelStateNoSurface, "no-surface"},
		{ChannelStateSurfaceCreating, "surface-creating"},
		{ChannelStateSurfaceReady, "surface-ready"},
		{ChannelStateDisposed, "disposed"},
		{ChannelState(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
