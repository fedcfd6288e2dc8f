package search

import (
	"errors"

	"github.com/luxfi/pocketh/pkg/selector"
)

var (
	// ErrInvalidSelector is returned when the target can't be interpreted as a
	// selector.
	ErrInvalidSelector = selector.ErrInvalid

	ErrInvalidAlphabet    = errors.New("invalid alphabet")
	ErrInvalidInfixLength = errors.New("invalid infix length")
	// ErrSpaceOverflow is returned before any worker starts when K^L does not
	// fit in a uint64.
	ErrSpaceOverflow   = errors.New("search space overflows uint64")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrWorkerPanic     = errors.New("search worker panicked")
	// ErrCanceled wraps the context error when the caller stops a search
	// before it reaches a decision.
	ErrCanceled = errors.New("search canceled")
)
