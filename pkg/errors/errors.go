// Package errors defines the sentinel errors shared across the engine.
// Every contract violation maps to one of these sentinels so callers can
// decide with errors.Is whether to abort a batch or skip a document.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch signals a sub-mask or attribute array whose length
	// does not match the view it is applied to.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrNotCompact signals a mutation that requires a fully compacted
	// document (no pending mask).
	ErrNotCompact = errors.New("document not compact")
	// ErrInvalidInput signals an argument outside its contract, e.g. a
	// negative window radius or fewer than two subsequent patterns.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownMatchMode signals an unrecognized pattern match mode.
	ErrUnknownMatchMode = errors.New("unknown match mode")
	// ErrUnknownGlobMethod signals an unrecognized glob method.
	ErrUnknownGlobMethod = errors.New("unknown glob method")
	// ErrUnknownTagset signals an unrecognized POS tagset.
	ErrUnknownTagset = errors.New("unknown POS tagset")
	// ErrDocumentNotFound signals a label lookup miss within a collection.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDuplicateLabel signals a document label that already exists within
	// the collection.
	ErrDuplicateLabel = errors.New("duplicate document label")
)

// EngineError couples a sentinel with a human-readable message.
type EngineError struct {
	Err     error
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func New(sentinel error, message string) *EngineError {
	return &EngineError{
		Err:     sentinel,
		Message: message,
	}
}

func Newf(sentinel error, format string, args ...any) *EngineError {
	return &EngineError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}
