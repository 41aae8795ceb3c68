package notification

import (
	"context"
	"log"
	"time"
)

type Event struct {
	RecipientID string
	Content     string
}

// Dispatcher entrega notificações fora do caminho da requisição.
// Semântica at-most-once: evento enfileirado pode se perder num crash e
// fila cheia descarta — notificação nunca derruba a API.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Create(ctx, ev.RecipientID, ev.Content); err != nil {
			log.Println("notification error:", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notification queue full, dropping event")
	}
}
