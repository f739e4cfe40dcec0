package app

import (
	"context"
	"log"
	"time"

	"github.com/clickplay/clickplay/internal/slots"
)

// EventKind identifies an Event.
type EventKind int

const (
	EventTick EventKind = iota
	EventToggle
	EventClick
	EventSettingsChanged
	EventQuit
)

// Event is a timer, user or file-system action queued for the machine.
type Event struct {
	Kind EventKind
	Slot slots.ID
}

// Toggle returns the event for a visibility menu item.
func Toggle(id slots.ID) Event { return Event{Kind: EventToggle, Slot: id} }

// Click returns the event for a click on a published icon.
func Click(id slots.ID) Event { return Event{Kind: EventClick, Slot: id} }

// Run starts the machine and handles events strictly in queue order until
// ctx is cancelled or a Quit event arrives. Timer ticks are posted into the
// same queue, so events must not be closed while Run is running. Icons are
// withdrawn before Run returns.
func (m *Machine) Run(ctx context.Context, events chan Event) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	m.run(ctx, events, ticker.C)
}

func (m *Machine) run(ctx context.Context, events chan Event, ticks <-chan time.Time) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.Start()
	go postTicks(ctx, events, ticks)

	defer func() {
		m.Shutdown()
		log.Println("Tray icons withdrawn")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !m.handle(ev) {
				return
			}
		}
	}
}

// postTicks queues a tick event per timer firing. A tick is dropped while
// the queue is full; the next one polls the same state.
func postTicks(ctx context.Context, events chan<- Event, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			select {
			case events <- Event{Kind: EventTick}:
			case <-ctx.Done():
				return
			default:
			}
		}
	}
}

// handle processes ev and reports whether the loop should continue.
func (m *Machine) handle(ev Event) bool {
	switch ev.Kind {
	case EventTick:
		m.Tick()
	case EventToggle:
		m.Toggle(ev.Slot)
	case EventClick:
		m.Click(ev.Slot)
	case EventSettingsChanged:
		m.ReloadSettings()
	case EventQuit:
		return false
	}
	return true
}
