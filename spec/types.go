package spec

// SessionID identifies a dialog session (UUIDv7 string).
type SessionID string

// DialogSize is the resolved dialog geometry: capped pixel dimensions plus
// the percentage each occupies of the screen dimension it was capped against.
// Percentages are exact (value*100/screen, no rounding) and lie in (0, 100].
type DialogSize struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	WidthPercent  float64 `json:"width%"`
	HeightPercent float64 `json:"height%"`
}

// MessageType tags the runtime shape of a dialog-to-opener message.
type MessageType string

const (
	MessageTypeString MessageType = "string"
	MessageTypeObject MessageType = "object"
)

// DialogMessage is the wire envelope sent from a dialog back to its opener.
// Type is nil (JSON null) when the message carried no value. This is the one
// byte-exact contract in the library: it always serializes as
// {"type":...,"value":...}.
type DialogMessage struct {
	Type  *MessageType `json:"type"`
	Value any          `json:"value"`
}
