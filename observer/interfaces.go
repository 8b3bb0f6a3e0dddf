package observer

import (
	"github.com/oklog/ulid/v2"

	"github.com/krew-solutions/observer-go/disposable"
	"github.com/krew-solutions/observer-go/option"
)

// Subject owns a piece of state and an ordered registry of observers,
// and notifies every registered observer when the state changes.
type Subject interface {
	// Attach appends the observer to the registry. Duplicates are permitted
	// and cause duplicate notifications. The returned disposable detaches
	// the observer again.
	Attach(o Observer) disposable.Disposable

	// Detach removes the first occurrence of the observer from the registry.
	// Returns ErrObserverNotFound if the observer is not registered.
	Detach(o Observer) error

	// Notify invokes Update on every registered observer, in attach order,
	// synchronously. Observer errors are collected; every observer is
	// notified regardless.
	Notify() error

	// State returns the current state, or Nothing before the first mutation.
	State() option.Option[int]

	// Cycle returns the id of the most recent notification cycle.
	Cycle() ulid.ULID
}

// Observer reacts to subject state changes.
type Observer interface {
	// Update receives the subject whose state changed. It must not mutate
	// the subject.
	Update(s Subject) error

	// ID returns a stable per-instance identity.
	ID() string
}

// Rand is the source of randomness for SomeBusinessLogic.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
