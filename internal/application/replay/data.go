package replay

// FrameInput records raw controller state for a single frame
type FrameInput struct {
	F   int    `json:"f"`             // Frame number
	L   bool   `json:"l,omitempty"`   // Left
	R   bool   `json:"r,omitempty"`   // Right
	U   bool   `json:"u,omitempty"`   // Up
	D   bool   `json:"d,omitempty"`   // Down
	Btn string `json:"btn,omitempty"` // Held buttons, e.g. "ab"
}

// ReplayData contains all data needed to replay an input session
type ReplayData struct {
	Version    string       `json:"version"`
	ID         string       `json:"id"`
	Character  string       `json:"character"`
	FacingLeft bool         `json:"facingLeft,omitempty"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
