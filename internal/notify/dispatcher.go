package notify

import "go.uber.org/zap"

type Event struct {
	SalonID uint
	UserID  uint
	Type    string
	Payload any
}

// Dispatcher decouples notification writes from the request path: events go
// through a bounded queue drained by a single worker.
type Dispatcher struct {
	notifier *Notifier
	log      *zap.Logger
	queue    chan Event
}

func NewDispatcher(notifier *Notifier, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		log:      log,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.notifier.Notify(
			ev.SalonID,
			ev.UserID,
			ev.Type,
			ev.Payload,
		); err != nil {
			d.log.Error("notification write failed", zap.Error(err))
		}
	}
}

// Dispatch enqueues an event. A nil dispatcher silently discards events so
// callers can treat notifications as optional.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// queue full: drop the notification, never block the API
		d.log.Warn("notification queue full, dropping event",
			zap.String("type", ev.Type))
	}
}
