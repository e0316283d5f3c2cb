package state

// Package state contains the observable containers the UI reads from:
// responsive width, navigation selection and the current route. Containers
// notify listeners synchronously, in registration order, on the goroutine
// that performed the mutation. They are not safe for concurrent use; hosts
// are expected to mutate them from their UI goroutine only.
