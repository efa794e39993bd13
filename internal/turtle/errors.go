package turtle

import "errors"

// Error kinds surfaced by the canvas and the color helpers. Callers match
// them with errors.Is; the wrapped message carries the offending input.
var (
	ErrInvalidColor   = errors.New("not a valid color")
	ErrRGBRange       = errors.New("rgb values must be between 0 and 1")
	ErrIrreversible   = errors.New("irreversible operation in fragile session")
	ErrNotImplemented = errors.New("not implemented")
	ErrBadOperand     = errors.New("bad operand")
)
