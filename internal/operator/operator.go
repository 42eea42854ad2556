package operator

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/service"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	ledger *service.LedgerService
	queue  chan ActionItem
	logger *logrus.Logger
}

func NewOperator(ledger *service.LedgerService, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		ledger: ledger,
		queue:  queue,
		logger: logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller gave up while the item was queued.
	if !item.state.CompareAndSwap(itemQueued, itemClaimed) {
		o.logger.Debug("Operator.processItem.abandoned")
		return
	}
	if err := item.ctx.Err(); err != nil {
		o.logger.WithError(err).Debug("Operator.processItem.skipped")
		item.response <- ActionItemResponse{err: err}
		return
	}

	// A claimed action runs to completion, its save included.
	err := item.action.Perform(context.WithoutCancel(item.ctx), o.ledger)
	item.response <- ActionItemResponse{err: err}
}

const (
	itemQueued int32 = iota
	itemClaimed
	itemAbandoned
)

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse

	// state moves from itemQueued to exactly one of itemClaimed (worker)
	// or itemAbandoned (caller).
	state *atomic.Int32
}

type ActionItemResponse struct {
	err error
}
