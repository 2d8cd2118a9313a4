package agent

import (
	"fmt"

	"github.com/abdul-hamid-achik/operant/internal/logging"
)

// Subscriber observes loop progress. Notification is synchronous and
// best-effort: a panicking subscriber is logged and the loop carries on.
type Subscriber interface {
	// Iteration fires after each completed cycle with the assistant's
	// structured text and the result text fed back to it.
	Iteration(assistantText, userText string)

	// MaxActionsReached fires when a session ends, with a snapshot of the
	// rolling history.
	MaxActionsReached(history []string)
}

// SubscriberFuncs adapts plain functions to the Subscriber interface.
// Nil fields are simply skipped.
type SubscriberFuncs struct {
	OnIteration         func(assistantText, userText string)
	OnMaxActionsReached func(history []string)
}

func (s SubscriberFuncs) Iteration(assistantText, userText string) {
	if s.OnIteration != nil {
		s.OnIteration(assistantText, userText)
	}
}

func (s SubscriberFuncs) MaxActionsReached(history []string) {
	if s.OnMaxActionsReached != nil {
		s.OnMaxActionsReached(history)
	}
}

// emitIteration notifies every subscriber, isolating panics.
func (l *Loop) emitIteration(assistantText, userText string) {
	for _, sub := range l.subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					l.log.Warn("subscriber panicked", logging.Reason(fmt.Sprint(r)))
				}
			}()
			sub.Iteration(assistantText, userText)
		}()
	}
}

// emitMaxActionsReached notifies every subscriber, isolating panics.
func (l *Loop) emitMaxActionsReached(history []string) {
	for _, sub := range l.subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					l.log.Warn("subscriber panicked", logging.Reason(fmt.Sprint(r)))
				}
			}()
			sub.MaxActionsReached(history)
		}()
	}
}
