package field

import "image/color"

// Surface is the drawing target the animator fills.
//
// Size reports the container size in pixels; (0, 0) means the container is
// not laid out yet and the animator will retry on the next tick.
type Surface interface {
	Size() (w, h float64)
	Clear()
	DrawDot(x, y, radius float64, c color.NRGBA)
}

// Flusher is implemented by surfaces that batch draws; Flush is called once
// after every repaint.
type Flusher interface {
	Flush()
}

// Releaser is implemented by surfaces holding resources that must be freed
// when the animator unmounts.
type Releaser interface {
	Release()
}
