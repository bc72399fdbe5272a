package multidict

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is reported when a key has no values and no default was given.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidArgument is reported for malformed construction or parse input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmpty is reported by PopItem on an empty MultiDict.
	ErrEmpty = errors.New("multidict is empty")
	// ErrMutatedDuringIteration is the panic value of an iterator whose
	// MultiDict was modified while it was being ranged over.
	ErrMutatedDuringIteration = errors.New("multidict mutated during iteration")
)

// KeyError records the key of a failed lookup.
// It unwraps to ErrKeyNotFound.
type KeyError[K comparable] struct {
	Key K
}

func (e *KeyError[K]) Error() string {
	return fmt.Sprintf("%v: %v", ErrKeyNotFound, e.Key)
}

func (e *KeyError[K]) Unwrap() error {
	return ErrKeyNotFound
}

func keyNotFound[K comparable](key K) error {
	return &KeyError[K]{key}
}
