package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/api/metrics"
	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	drainTimeout   = 10 * time.Second
)

// ErrQueueFull is returned by Enqueue when the worker's buffer is saturated.
var ErrQueueFull = errors.New("order queue full")

// Dispatcher routes confirmed orders to a fixed set of workers using
// consistent hashing on the buyer's subject id, so one buyer's orders are
// recorded in checkout order.
type Dispatcher struct {
	workers  []chan *domain.Order
	recorder ports.OrderRecorder
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.OrderRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan *domain.Order, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.Order, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. When ctx is cancelled each worker
// records what is left in its buffer, then returns.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has drained and returned. Call it only
// after Enqueue can no longer be reached.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands an order to the worker responsible for its subject. It never
// blocks the checkout request: a saturated worker yields ErrQueueFull.
func (d *Dispatcher) Enqueue(order *domain.Order) error {
	idx := d.shardIndex(order.SubjectID)
	select {
	case d.workers[idx] <- order:
		metrics.OrdersQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		metrics.OrdersErrorsTotal.WithLabelValues("queue_full").Inc()
		return ErrQueueFull
	}
}

// shardIndex maps a subject id deterministically to a worker index.
func (d *Dispatcher) shardIndex(subjectID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subjectID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.Order) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	// Writes already dequeued must finish even if shutdown starts mid-record.
	recordCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			d.drain(recordCtx, id, ch)
			return
		case order, ok := <-ch:
			if !ok {
				return
			}
			metrics.OrdersQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.record(recordCtx, id, order)
		}
	}
}

// drain records whatever is still buffered once the worker is told to stop.
// Orders in the buffer were already confirmed to the buyer.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan *domain.Order) {
	ctx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()

	drained := 0
	for {
		select {
		case order, ok := <-ch:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				metrics.OrdersErrorsTotal.WithLabelValues("dropped_on_shutdown").Inc()
				d.log.Error().Str("order_id", order.ID).Int("worker_id", id).Msg("order dropped on shutdown")
				continue
			}
			d.record(ctx, id, order)
			drained++
		default:
			metrics.OrdersQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)
			if drained > 0 {
				d.log.Info().Int("worker_id", id).Int("orders", drained).Msg("order queue drained")
			}
			return
		}
	}
}

func (d *Dispatcher) record(ctx context.Context, id int, order *domain.Order) {
	if err := d.recorder.Record(ctx, order); err != nil {
		metrics.OrdersErrorsTotal.WithLabelValues("record_failed").Inc()
		d.log.Error().Err(err).
			Str("order_id", order.ID).
			Int("worker_id", id).
			Msg("order recording failed")
		return
	}
	metrics.OrdersRecordedTotal.WithLabelValues(string(order.ShippingMethod)).Inc()
}
