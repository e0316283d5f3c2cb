package state

import (
	"testing"

	"fyne.io/fyne/v2/data/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter returns a listener and a pointer to the number of times it fired
func counter() (binding.DataListener, *int) {
	calls := 0
	return binding.NewDataListener(func() { calls++ }), &calls
}

func TestListeners_NotifyInRegistrationOrder(t *testing.T) {
	var order []string
	l := listeners{owner: "test"}
	l.add(binding.NewDataListener(func() { order = append(order, "first") }))
	l.add(binding.NewDataListener(func() { order = append(order, "second") }))
	l.add(binding.NewDataListener(func() { order = append(order, "third") }))

	l.notify()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestListeners_DuplicateRegistrationFiresOnce(t *testing.T) {
	listener, calls := counter()
	l := listeners{owner: "test"}
	l.add(listener)
	l.add(listener)

	require.Equal(t, 1, l.count())
	l.notify()
	assert.Equal(t, 1, *calls)
}

func TestListeners_RemoveUnknownIsNoop(t *testing.T) {
	registered, calls := counter()
	stranger, _ := counter()
	l := listeners{owner: "test"}
	l.add(registered)

	l.remove(stranger)
	l.remove(nil)
	l.add(nil)

	require.Equal(t, 1, l.count())
	l.notify()
	assert.Equal(t, 1, *calls)
}

func TestListeners_UnsubscribeDuringNotify(t *testing.T) {
	l := listeners{owner: "test"}
	second, secondCalls := counter()
	var first binding.DataListener
	first = binding.NewDataListener(func() {
		l.remove(first)
		l.remove(second)
	})
	l.add(first)
	l.add(second)

	l.notify()
	assert.Equal(t, 1, *secondCalls, "removal takes effect on the next notification")
	assert.Equal(t, 0, l.count())

	l.notify()
	assert.Equal(t, 1, *secondCalls)
}

func TestListeners_GuardPanicsWhileNotifying(t *testing.T) {
	l := listeners{owner: "Probe"}
	l.add(binding.NewDataListener(func() { l.guard("Set") }))

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		err, ok := recovered.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrReentrantMutation)
		assert.Contains(t, err.Error(), "Probe.Set")
		assert.False(t, l.notifying, "notifying flag must be reset after a panic")
	}()
	l.notify()
}

func TestListeners_ClearIsIdempotent(t *testing.T) {
	l := listeners{owner: "test"}
	l.clear()
	listener, calls := counter()
	l.add(listener)
	l.clear()
	l.clear()

	l.notify()
	assert.Equal(t, 0, *calls)
}
