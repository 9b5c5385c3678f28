package sim

import "errors"

// Domain errors for session setup and scripted input.
var (
	// ErrInvalidViewport indicates a viewport too small to hold the ball.
	ErrInvalidViewport = errors.New("sim: viewport smaller than ball diameter")

	// ErrUnknownEvent indicates a scripted pointer event with an unknown type.
	ErrUnknownEvent = errors.New("sim: unknown pointer event type")

	// ErrEventOutOfRange indicates a scripted event scheduled outside the run.
	ErrEventOutOfRange = errors.New("sim: scripted event frame out of range")
)
