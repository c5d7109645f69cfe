package service

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) byName(name string) []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestForecastService_ObservesUseCase(t *testing.T) {
	rec := &recordingObserver{}
	ts := newTestServices(t, rec)
	ts.addWarehouse(t, "PRETORIA", 100)
	ts.setOccupancy(t, "PRETORIA", 70)

	_, err := ts.forecastSvc.Forecast(context.Background(), requestAt(week42))
	require.NoError(t, err)

	events := rec.byName("forecast")
	require.Len(t, events, 1)
	ev := events[0]
	assert.True(t, ev.Success)
	assert.NoError(t, ev.Err)
	assert.Equal(t, 1, ev.Fields["warehouses"])
	assert.Equal(t, 0, ev.Fields["shipments"])
	assert.Equal(t, 0, ev.Fields["capacity_warnings"])
	assert.Equal(t, "2026-W42", ev.Fields["start_week"])

	assert.Len(t, rec.byName("set-occupancy"), 1)
}

func TestForecastService_ObservesFailure(t *testing.T) {
	rec := &recordingObserver{}
	ts := newTestServices(t, rec)

	_, err := ts.forecastSvc.Forecast(context.Background(), requestAt(week42))
	require.Error(t, err)

	events := rec.byName("forecast")
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, err, events[0].Err)
}

func TestLogUseCaseObserver_WritesRecords(t *testing.T) {
	var buf bytes.Buffer
	ts := newTestServices(t, NewLogUseCaseObserver(&buf))
	ts.addWarehouse(t, "PRETORIA", 100)

	_, err := ts.importSvc.ImportSnapshotFromSchema(context.Background(), validSnapshotSchema())
	require.NoError(t, err)
	_, err = ts.occupancySvc.Set(context.Background(), "NOWHERE", 1, "")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=import-snapshot")
	assert.Contains(t, out, "shipments=2")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "use_case=set-occupancy")
	assert.Contains(t, out, "success=false")
}

func TestUseCaseObserverOrNoop_FansOut(t *testing.T) {
	first, second := &recordingObserver{}, &recordingObserver{}
	ts := newTestServices(t, first, nil, second)
	ts.addWarehouse(t, "PRETORIA", 100)
	ts.setOccupancy(t, "PRETORIA", 10)

	assert.Len(t, first.byName("set-occupancy"), 1)
	assert.Len(t, second.byName("set-occupancy"), 1)
}

func TestLogUseCaseObserver_WarnsOnForecastWarnings(t *testing.T) {
	var buf bytes.Buffer
	rec := &recordingObserver{}
	ts := newTestServices(t, NewLogUseCaseObserver(&buf), rec)
	ts.addWarehouse(t, "PRETORIA", 0)

	_, err := ts.forecastSvc.Forecast(context.Background(), requestAt(week42))
	require.NoError(t, err)

	events := rec.byName("forecast")
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].Warnings)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "use_case=forecast")
	assert.Contains(t, out, "capacity_warnings=")
	assert.Contains(t, out, "first_warning=")
}
