package layout

import "errors"

// ErrNoSuchWire indicates a wire position outside the puzzle.
var ErrNoSuchWire = errors.New("layout: no such wire")
