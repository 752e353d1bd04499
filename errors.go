package batch

import "errors"

// Errors returned by drawing operations. Validation happens before any
// geometry is appended: a call that returns an error has not touched the
// buffers.
var (
	// ErrInsufficientVertices is returned when a shape operation receives
	// fewer points than its minimum (2 for line strips, 3 for triangle
	// strips, fans and circle tessellation).
	ErrInsufficientVertices = errors.New("batch: insufficient vertices")

	// ErrInvalidRadius is returned when a rounded-rectangle corner radius
	// is negative or exceeds half the rectangle's width or height.
	ErrInvalidRadius = errors.New("batch: invalid corner radius")

	// ErrBufferOverflow is returned when appending geometry would exceed
	// a fixed buffer capacity. The frame cannot accept more geometry
	// until Finish and Start drain the buffers; see WithGrowableBuffers
	// for the growable alternative.
	ErrBufferOverflow = errors.New("batch: buffer overflow")

	// ErrIndexOutOfRange is returned by AddIndex when the index does not
	// refer to a previously appended vertex.
	ErrIndexOutOfRange = errors.New("batch: index out of range")
)
