package service

import (
	"context"
	"errors"
	"sync"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/model"
	ws "salesanalytics/internal/websocket"
)

var errStoreDown = errors.New("connection refused")

// memorySalesRepo filters in memory the way the SQL repository filters in the database
type memorySalesRepo struct {
	mu       sync.Mutex
	records  []model.SalesRecord
	fetchErr error
	writeErr error
	specs    []analytics.FilterSpec
}

func (r *memorySalesRepo) Fetch(_ context.Context, spec analytics.FilterSpec) ([]model.SalesRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs = append(r.specs, spec)
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	return analytics.Filter(r.records, spec), nil
}

func (r *memorySalesRepo) CreateBatch(_ context.Context, records []model.SalesRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	r.records = append(r.records, records...)
	return nil
}

func (r *memorySalesRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return 0, r.writeErr
	}
	n := int64(len(r.records))
	r.records = nil
	return n, nil
}

func (r *memorySalesRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.records)), nil
}

func (r *memorySalesRepo) lastSpec() analytics.FilterSpec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.specs[len(r.specs)-1]
}

type memoryImportRepo struct {
	logs   []model.ImportLog
	logErr error
}

func (r *memoryImportRepo) Log(_ context.Context, entry *model.ImportLog) error {
	if r.logErr != nil {
		return r.logErr
	}
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *memoryImportRepo) List(_ context.Context, offset, limit int) ([]model.ImportLog, int64, error) {
	if r.logErr != nil {
		return nil, 0, r.logErr
	}
	total := int64(len(r.logs))
	if offset >= len(r.logs) {
		return []model.ImportLog{}, total, nil
	}
	end := min(offset+limit, len(r.logs))
	return r.logs[offset:end], total, nil
}

// passthroughTx runs fn inline; the fakes do not roll back
type passthroughTx struct {
	calls int
}

func (t *passthroughTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type recordingNotifier struct {
	events []ws.Event
	err    error
}

func (n *recordingNotifier) Publish(evt ws.Event) error {
	n.events = append(n.events, evt)
	return n.err
}
