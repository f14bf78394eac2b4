package searchlog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartment-availability-backend/internal/model"
)

// mockRecorder is a mock implementation of the Recorder interface.
type mockRecorder struct {
	mu      sync.Mutex
	records []model.SearchRecord
	err     error
	done    chan struct{}
}

func newMockRecorder(err error) *mockRecorder {
	return &mockRecorder{err: err, done: make(chan struct{}, 16)}
}

func (m *mockRecorder) RecordSearch(_ context.Context, rec *model.SearchRecord) error {
	m.mu.Lock()
	m.records = append(m.records, *rec)
	m.mu.Unlock()
	m.done <- struct{}{}
	return m.err
}

func (m *mockRecorder) ids() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for _, r := range m.records {
		ids = append(ids, r.ID)
	}
	return ids
}

func waitFor(t *testing.T, ch chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for record %d", i+1)
		}
	}
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, 1, newMockRecorder(nil))

	assert.True(t, wp.Dispatch(model.SearchRecord{ID: "a"}))

	select {
	case job := <-wp.jobs:
		assert.Equal(t, "a", job.ID)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DropsWhenFull(t *testing.T) {
	wp := NewWorkerPool(1, 1, newMockRecorder(nil))

	assert.True(t, wp.Dispatch(model.SearchRecord{ID: "a"}))
	assert.False(t, wp.Dispatch(model.SearchRecord{ID: "b"}))
}

func TestWorkerPool_RecordsDispatchedSearches(t *testing.T) {
	rec := newMockRecorder(nil)
	wp := NewWorkerPool(2, 8, rec)
	ctx, cancel := context.WithCancel(context.Background())
	wp.Start(ctx)

	for _, id := range []string{"a", "b", "c"} {
		require.True(t, wp.Dispatch(model.SearchRecord{ID: id}))
	}
	waitFor(t, rec.done, 3)

	cancel()
	wp.Wait()
	assert.ElementsMatch(t, []string{"a", "b", "c"}, rec.ids())
}

func TestWorkerPool_KeepsRunningAfterRecorderError(t *testing.T) {
	rec := newMockRecorder(errors.New("db down"))
	wp := NewWorkerPool(1, 4, rec)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(model.SearchRecord{ID: "a"})
	wp.Dispatch(model.SearchRecord{ID: "b"})
	waitFor(t, rec.done, 2)

	assert.Equal(t, []string{"a", "b"}, rec.ids())
}
