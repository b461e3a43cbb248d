package stream

import "errors"

// Contract violations surfaced by the stream layer.
var (
	ErrUnknownDevice = errors.New("unknown device")
)
