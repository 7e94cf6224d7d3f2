package sim

import "errors"

// ErrInvalidArgument is returned by constructors given a value the simulation
// cannot be built from (negative sizes, speeds or counts).
var ErrInvalidArgument = errors.New("sim: invalid argument")
