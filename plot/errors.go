package plot

import "errors"

var (
	// ErrBadPaintParameter indicates a paint parameter other than alpha or beta.
	ErrBadPaintParameter = errors.New("plot: paint parameter must be alpha or beta")

	// ErrBadColor indicates a colour string that is neither hex nor a known colormap.
	ErrBadColor = errors.New("plot: invalid colour")

	// ErrNoPanels indicates a render request without any mesh.
	ErrNoPanels = errors.New("plot: nothing to render")
)
