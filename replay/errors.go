package replay

import "errors"

// ErrRealizationRejected indicates a character in the requested sequence
// was rejected by realize.Realize; replay stops at that point rather than
// silently skipping it.
var ErrRealizationRejected = errors.New("replay: realization rejected")
