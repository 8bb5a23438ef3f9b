package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Ações registradas pelo sistema.
const (
	ActionAppointmentScheduled = "appointment_scheduled"
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionAppointmentCompleted = "appointment_completed"
	ActionScheduleFailed       = "appointment_schedule_failed"
)

const defaultQueueSize = 100

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Sink interface {
	Record(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink   Sink
	logger *zap.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, logger *zap.Logger) *Dispatcher {
	return newDispatcher(sink, logger, defaultQueueSize)
}

func newDispatcher(sink Sink, logger *zap.Logger, size int) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		logger: logger.Named("audit"),
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Record(ctx, ev); err != nil {
			d.logger.Error("failed to record audit event",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch nunca bloqueia: com a fila cheia o evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close esvazia a fila e espera o worker terminar.
// Dispatch depois de Close é proibido.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
