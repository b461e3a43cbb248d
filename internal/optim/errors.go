package optim

import "errors"

// ErrInvalidConfiguration reports contradictory or out-of-range
// optimizer options. It is returned at construction time, never
// deferred to the first update.
var ErrInvalidConfiguration = errors.New("invalid optimizer configuration")
