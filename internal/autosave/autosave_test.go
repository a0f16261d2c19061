package autosave

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSaver struct {
	calls atomic.Int32
}

func (c *countingSaver) SaveAll() {
	c.calls.Add(1)
}

type fakeLifecycle struct {
	exitedForeground func()
	stopped          func()
}

func (f *fakeLifecycle) SetOnExitedForeground(fn func()) { f.exitedForeground = fn }
func (f *fakeLifecycle) SetOnStopped(fn func())          { f.stopped = fn }

func TestNewScheduler_DefaultInterval(t *testing.T) {
	s := NewScheduler(&countingSaver{}, 0)
	assert.Equal(t, DefaultInterval, s.Interval())
	assert.False(t, s.Running())
}

func TestScheduler_SavesPeriodically(t *testing.T) {
	saver := &countingSaver{}
	s := NewScheduler(saver, 10*time.Millisecond)

	require.True(t, s.Start(context.Background()))
	defer s.Stop()

	require.Eventually(t, func() bool {
		return saver.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_StartTwice(t *testing.T) {
	s := NewScheduler(&countingSaver{}, time.Hour)

	assert.True(t, s.Start(context.Background()))
	assert.False(t, s.Start(context.Background()))
	assert.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())

	// Can be restarted after a stop
	assert.True(t, s.Start(context.Background()))
	s.Stop()
}

func TestScheduler_StopHaltsSaving(t *testing.T) {
	saver := &countingSaver{}
	s := NewScheduler(saver, 5*time.Millisecond)

	s.Start(context.Background())
	require.Eventually(t, func() bool {
		return saver.calls.Load() >= 1
	}, time.Second, time.Millisecond)
	s.Stop()

	after := saver.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, saver.calls.Load())

	// Stopping again is harmless
	s.Stop()
}

func TestScheduler_ContextCancel(t *testing.T) {
	saver := &countingSaver{}
	s := NewScheduler(saver, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	cancel()

	// Stop still returns once the loop has exited
	s.Stop()
	after := saver.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, saver.calls.Load())
}

func TestBindLifecycle(t *testing.T) {
	saver := &countingSaver{}
	hooks := &fakeLifecycle{}

	BindLifecycle(hooks, saver)
	require.NotNil(t, hooks.exitedForeground)
	require.NotNil(t, hooks.stopped)

	hooks.exitedForeground()
	assert.Equal(t, int32(1), saver.calls.Load())

	hooks.exitedForeground()
	hooks.stopped()
	assert.Equal(t, int32(3), saver.calls.Load())
}
