package ringbuf

import "errors"

// Sentinel errors returned by the buffer. Callers match them with
// errors.Is; the wrapped message carries the offending values.
var (
	ErrCapacity  = errors.New("capacity must be positive")
	ErrIndex     = errors.New("index out of range")
	ErrEmpty     = errors.New("empty window")
	ErrUnknownOp = errors.New("unknown reduction op")
)
