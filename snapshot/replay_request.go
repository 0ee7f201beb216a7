package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReplayRequest is the §6 replay control document: a distinct, minimal
// JSON shape from Document. It never carries Document's state-dump
// fields, so its own "characters" key (the realize order, not a
// per-character active-flag array) never collides with Document's.
type ReplayRequest struct {
	Test       int    `json:"test"`
	Input      string `json:"input"`
	Output     string `json:"output"`
	Characters []int  `json:"characters"`
}

// LoadReplayRequest decodes a ReplayRequest from r.
func LoadReplayRequest(r io.Reader) (*ReplayRequest, error) {
	var req ReplayRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("snapshot.LoadReplayRequest: %w: %w", ErrSnapshotCorrupt, err)
	}
	if req.Input == "" || req.Output == "" {
		return nil, fmt.Errorf("snapshot.LoadReplayRequest: %w: missing input/output path", ErrSnapshotCorrupt)
	}

	return &req, nil
}

// Save writes req as JSON to w.
func (req *ReplayRequest) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(req)
}
