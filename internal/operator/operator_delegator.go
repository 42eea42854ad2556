package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/service"
)

var ErrStopped = errors.New("operator stopped")

const queueSize = 1000

// OperatorDelegator owns the queue and the single Operator that drains it.
// The ledger is not safe for concurrent use, so every action, reads
// included, goes through the one worker.
type OperatorDelegator struct {
	ledger *service.LedgerService
	logger *logrus.Logger
	queue  chan ActionItem
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(ledger *service.LedgerService, logger *logrus.Logger) *OperatorDelegator {
	return &OperatorDelegator{
		ledger: ledger,
		logger: logger,
		queue:  make(chan ActionItem, queueSize),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.ledger, d.queue, d.logger)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

// Stop closes the queue and waits for queued actions to finish.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

// Process runs action on the worker and returns its error. If ctx ends
// before the worker picks the action up, the action never runs and ctx.Err()
// is returned. Once the worker has picked it up, Process waits for the
// result, so a nil error always means the action ran to completion.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
		state:    new(atomic.Int32),
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		if item.state.CompareAndSwap(itemQueued, itemAbandoned) {
			return ctx.Err()
		}
		resp := <-respCh
		return resp.err
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
