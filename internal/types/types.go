package types

// DemoResponse is the envelope every demo endpoint returns. OK is false for
// validation failures; the failure itself travels in HTML as an inline
// error fragment, never as a non-200 status.
type DemoResponse struct {
	OK         bool   `json:"ok"`
	HTML       string `json:"html"`
	Result     any    `json:"result,omitempty"`
	Source     string `json:"source,omitempty"` // "cache" or "fresh", stats only
	Generation uint64 `json:"generation,omitempty"`
}

// LastResponse is the payload of GET /api/demo/{name}/last.
type LastResponse struct {
	Demo       string `json:"demo"`
	HTML       string `json:"html"`
	Result     any    `json:"result"`
	ComputedAt string `json:"computed_at"` // RFC3339
}
