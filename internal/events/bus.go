package events

import (
	"context"
	"sync"

	"rishta_backend/internal/logger"
)

// Event types published on the bus.
const (
	ProfileApproved  = "profile.approved"
	ProfileRejected  = "profile.rejected"
	MatchCreated     = "match.created"
	ReferralRewarded = "referral.rewarded"
)

// Event is a change notification. Payload keys depend on the type.
type Event struct {
	Type    string
	Payload map[string]string
}

// Handler reacts to one published event. Handlers run synchronously on the
// publisher's goroutine and must not block for long.
type Handler func(ctx context.Context, evt Event)

// Bus is a minimal in-process publish/subscribe hub. Services subscribe at
// wiring time and publish on state changes, so downstream reactions
// (referral completion, notification fan-out) stay out of the producing
// service's code.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for the given event type.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish delivers the event to every subscriber of its type. A panicking
// handler is logged and does not stop delivery to the others.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	handlers := b.handlers[evt.Type]
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.CtxError(ctx, "event handler panicked", "event", evt.Type, "panic", r)
				}
			}()
			h(ctx, evt)
		}()
	}
}
