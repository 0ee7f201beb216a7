package instance

import "errors"

// ErrMalformedInput is returned when the loader encounters a non-binary
// cell or a truncated instance body.
var ErrMalformedInput = errors.New("instance: malformed input")
