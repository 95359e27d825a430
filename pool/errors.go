package pool

import "errors"

var ErrUnknownHandle = errors.New("unknown handle")

// ErrCapacityExhausted is returned when a mutation would grow the pool over
// its configured max size or when no handle values are left.
var ErrCapacityExhausted = errors.New("capacity exhausted")
