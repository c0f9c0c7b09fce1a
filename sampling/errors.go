package sampling

import "errors"

// ErrBadResolution indicates a resolution smaller than MinResolution.
var ErrBadResolution = errors.New("sampling: resolution must be at least 1")
