package tetris

import "errors"

// ErrInvalidConfig is returned when the engine or grid is constructed with
// settings it cannot run with.
var ErrInvalidConfig = errors.New("tetris: invalid configuration")
