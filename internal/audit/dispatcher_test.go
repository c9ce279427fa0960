package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	err    error
}

func (r *recorder) Record(_ context.Context, ev Event) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func TestDispatcher_DeliversOnClose(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(rec, zap.NewNop(), 10)

	d.Dispatch(Event{Action: "user_created"})
	d.Dispatch(Event{Action: "profile_updated"})
	d.Close()

	require.Len(t, rec.events, 2)
	assert.Equal(t, "user_created", rec.events[0].Action)
	assert.Equal(t, "profile_updated", rec.events[1].Action)

	d.Dispatch(Event{Action: "late"})
	d.Close()
	assert.Len(t, rec.events, 2, "events after close are dropped")
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	rec := &recorder{block: make(chan struct{})}
	d := NewDispatcher(rec, zap.NewNop(), 1)

	// the worker takes the first event and blocks; the second fills the
	// queue and the rest are dropped
	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: "appointment_created"})
	}
	close(rec.block)
	d.Close()

	assert.LessOrEqual(t, len(rec.events), 2)
	assert.GreaterOrEqual(t, len(rec.events), 1)
}

func TestDispatcher_RecorderErrorsDoNotStopWorker(t *testing.T) {
	rec := &recorder{err: errors.New("db down")}
	d := NewDispatcher(rec, zap.NewNop(), 10)

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	assert.Len(t, rec.events, 2)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "x"}) })
}

func TestToModel(t *testing.T) {
	uid := uuid.New()
	row := ToModel(Event{
		UserID:   &uid,
		Action:   "appointment_created",
		Entity:   "appointment",
		Metadata: map[string]any{"hour": 10},
	})

	assert.Equal(t, &uid, row.UserID)
	assert.Equal(t, "appointment", row.Entity)
	assert.JSONEq(t, `{"hour":10}`, row.Metadata)
}
