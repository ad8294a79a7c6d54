package plane

import "errors"

// ErrParallel is returned when a line has no single intersection with a plane,
// either because it runs parallel to it or because the plane is degenerate.
var ErrParallel = errors.New("line is parallel to plane")
