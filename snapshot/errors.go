package snapshot

import "errors"

// ErrSnapshotCorrupt indicates a missing or mistyped document field, or a
// sidecar that could not be decoded as a graph-exchange payload.
var ErrSnapshotCorrupt = errors.New("snapshot: corrupt document")
