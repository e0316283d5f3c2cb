package state

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2/data/binding"

	"github.com/ytget/adaptive-nav/internal/model"
)

// ErrReentrantMutation is the panic value (wrapped) raised when a listener
// mutates the container that is currently notifying it.
var ErrReentrantMutation = errors.New("state: mutation during notification")

// Observable is a value that notifies listeners when it changes. Listeners
// are compared with ==, so they must be comparable; binding.NewDataListener
// returns a suitable handle.
type Observable[T any] interface {
	Subscribe(listener binding.DataListener)
	Unsubscribe(listener binding.DataListener)
	Value() T
}

// Navigator performs the platform navigation for a selected entry
type Navigator interface {
	Navigate(entry model.NavigationEntry) error
}

// listeners is the subscriber list shared by all containers
type listeners struct {
	owner     string
	items     []binding.DataListener
	notifying bool
}

// add registers listener once; registering the same handle again is a no-op
func (l *listeners) add(listener binding.DataListener) {
	if listener == nil {
		return
	}
	for _, existing := range l.items {
		if existing == listener {
			return
		}
	}
	l.items = append(l.items, listener)
}

// remove deregisters listener; unknown listeners are ignored
func (l *listeners) remove(listener binding.DataListener) {
	if listener == nil {
		return
	}
	// Build a new slice so an in-flight notify keeps iterating its snapshot.
	next := make([]binding.DataListener, 0, len(l.items))
	for _, existing := range l.items {
		if existing != listener {
			next = append(next, existing)
		}
	}
	l.items = next
}

// notify calls every listener registered when notification starts
func (l *listeners) notify() {
	l.notifying = true
	defer func() { l.notifying = false }()

	snapshot := l.items
	for _, listener := range snapshot {
		listener.DataChanged()
	}
}

// guard panics when called while listeners are being notified
func (l *listeners) guard(op string) {
	if l.notifying {
		panic(fmt.Errorf("%s.%s: %w", l.owner, op, ErrReentrantMutation))
	}
}

func (l *listeners) clear() {
	l.items = nil
}

func (l *listeners) count() int {
	return len(l.items)
}
