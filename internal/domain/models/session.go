package models

// SessionState is an immutable snapshot of one analysis session. A new value
// is produced for every event; nothing mutates a published snapshot.
type SessionState struct {
	Ticker    string            `json:"ticker"`
	Period    string            `json:"period"`
	Document  *AnalysisDocument `json:"-"`
	Loading   bool              `json:"loading"`
	Error     string            `json:"error,omitempty"`
	RequestID uint64            `json:"request_id"`
}

// CanSubmit mirrors the trigger control: enabled when idle with a ticker.
func (s SessionState) CanSubmit() bool {
	return !s.Loading && s.Ticker != ""
}
