package audit

import (
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	ProfileID string
	Action    string
	Entity    string
	EntityID  string
	Metadata  any
}

const defaultQueueSize = 100

type Dispatcher struct {
	logger *Logger
	warn   *zap.Logger
	queue  chan Event

	// protege o envio contra a fila já fechada
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	return newDispatcher(logger, log, defaultQueueSize)
}

func newDispatcher(logger *Logger, log *zap.Logger, size int) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		warn:   log,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			d.warn.Warn("audit error", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.warn.Warn("audit dispatcher closed, dropping event",
			zap.String("action", ev.Action),
		)
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.warn.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}

// Close drena a fila e espera o worker terminar
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
