package drawing

import "errors"

var (
	ErrInvalidPlane = errors.New("invalid plane")
	ErrUnknownMode  = errors.New("unknown draw mode")
	ErrNilSink      = errors.New("nil sink")
)
