package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestFormatBookingMessage(t *testing.T) {
	// 11:00 UTC = 08:00 em São Paulo
	date := time.Date(2024, time.June, 15, 11, 0, 0, 0, time.UTC)

	got := FormatBookingMessage("João", "Silva", date)
	want := "Novo agendamento de João Silva para o dia 15 de Junho, às 08:00h"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestFormatBookingMessage_AllMonthsNamed(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		date := time.Date(2024, month, 10, 14, 0, 0, 0, time.UTC)
		if got := FormatBookingMessage("Ana", "Lima", date); got == "" {
			t.Fatalf("empty message for month %v", month)
		}
		if monthNames[month] == "" {
			t.Fatalf("missing name for month %v", month)
		}
	}
}

type recordingSink struct {
	mu      sync.Mutex
	fail    bool
	entries []string
	done    chan struct{}
}

func (s *recordingSink) Create(ctx context.Context, recipientID, content string) error {
	defer func() { s.done <- struct{}{} }()
	if s.fail {
		return errors.New("mongo down")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, recipientID+"|"+content)
	return nil
}

func TestDispatcher_DeliversOutOfBand(t *testing.T) {
	sink := &recordingSink{done: make(chan struct{}, 1)}
	d := NewDispatcher(sink)

	d.Dispatch(Event{RecipientID: "prov-1", Content: "olá"})

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.entries) != 1 || sink.entries[0] != "prov-1|olá" {
		t.Fatalf("entries = %v", sink.entries)
	}
}

func TestDispatcher_SinkFailureDoesNotPropagate(t *testing.T) {
	sink := &recordingSink{fail: true, done: make(chan struct{}, 1)}
	d := NewDispatcher(sink)

	// não pode bloquear nem entrar em pânico
	d.Dispatch(Event{RecipientID: "prov-1", Content: "olá"})

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not consume the event")
	}
}
