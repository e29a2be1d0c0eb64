package ir

import "errors"

var (
	// ErrNotAContainer reports a container-only operation invoked on a
	// scalar node.
	ErrNotAContainer = errors.New("not a container")

	// ErrKeyCollision reports a duplicate key during object
	// construction.
	ErrKeyCollision = errors.New("duplicate key")

	// ErrNoKey reports a key miss on keyed lookup.
	ErrNoKey = errors.New("no such key")

	// ErrIndex reports an out of bounds array index.
	ErrIndex = errors.New("index out of bounds")

	// ErrNonFinite reports an attempt to build a number from NaN or an
	// infinity.
	ErrNonFinite = errors.New("number must be finite")
)
