package histogram

import "errors"

var (
	// ErrInvalidArgument signals a negative bin count.
	ErrInvalidArgument = errors.New("histogram: invalid argument")
	// ErrIndexOutOfRange signals a class index outside [0, Bins()).
	ErrIndexOutOfRange = errors.New("histogram: class index out of range")
	// ErrUnderflow signals a decrement of an empty bin.
	ErrUnderflow = errors.New("histogram: bin is already empty")
	// ErrOverflow signals an increment beyond MaxMass samples.
	ErrOverflow = errors.New("histogram: too many samples")
)
