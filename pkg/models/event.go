package models

// EventType classifies a capture event.
type EventType string

// Event type constants. These match the capture surface's wire values.
const (
	EventTypeDOMMutation     EventType = "dom_mut"
	EventTypeUserInteraction EventType = "user_int"
	EventTypeNetwork         EventType = "network"
	EventTypeError           EventType = "error"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeDOMMutation, EventTypeUserInteraction, EventTypeNetwork, EventTypeError:
		return true
	}
	return false
}

// PageContext describes where a raw event was observed.
type PageContext struct {
	URL       string `json:"url"`
	ViewportW int    `json:"viewportWidth"`
	ViewportH int    `json:"viewportHeight"`
	UserAgent string `json:"userAgent"`
	TabID     string `json:"tabId"`
}

// MutationRecord is a single DOM mutation observed by the capture surface.
type MutationRecord struct {
	Target       *Fingerprint `json:"target,omitempty"`
	AddedNodes   int          `json:"addedNodes"`
	RemovedNodes int          `json:"removedNodes"`
	OldValue     string       `json:"oldValue,omitempty"`
	NewValue     string       `json:"newValue,omitempty"`
	FormID       string       `json:"formId,omitempty"`
}

// RawPayload is the polymorphic payload of a RawEvent, discriminated by the
// event type. Only the fields relevant to the event type are populated.
type RawPayload struct {
	// user_int
	Action string       `json:"action,omitempty"`
	Value  string       `json:"value,omitempty"`
	Target *Fingerprint `json:"target,omitempty"`

	// dom_mut
	Mutations []MutationRecord `json:"mutations,omitempty"`

	// network
	Method string `json:"method,omitempty"`
	URL    string `json:"url,omitempty"`
	Status int    `json:"status,omitempty"`

	// error
	Message string `json:"message,omitempty"`
}

// RawEvent is a device-only capture record. It never crosses the privacy
// boundary: the pipeline consumes it, emits a SecureEvent, and the caller
// must not retain it.
type RawEvent struct {
	Timestamp int64       `json:"timestamp"` // monotonic milliseconds
	SessionID string      `json:"sessionId"` // device session UUID, rotated every 15 min
	EventType EventType   `json:"eventType"`
	Payload   RawPayload  `json:"payload"`
	Context   PageContext `json:"context"`
}

// SecureEvent is the privacy-boundary record transmitted off-device.
// Invariant: contains no plaintext URL, no user text, no credential.
type SecureEvent struct {
	SessionFingerprint string      `json:"sessionFingerprint"`
	TimestampBucket    string      `json:"timestampBucket"` // ISO-8601, 5-min granularity
	IntentVector       []float64   `json:"intentVector"`    // 128 dims, L2-normalized then perturbed
	StructuralHash     string      `json:"structuralHash"`  // 8-hex FNV-1a
	OrgID              string      `json:"orgId"`
	EventType          EventType   `json:"eventType"`
	IntentLabel        IntentClass `json:"intentLabel"`
	IntentConfidence   float64     `json:"intentConfidence"`
	ElementSignature   string      `json:"elementSignature,omitempty"`
	SequenceNumber     int         `json:"sequenceNumber"`
}

// SecureEventBatch is the transmitter's wire envelope.
type SecureEventBatch struct {
	Events            []SecureEvent `json:"events"`
	DeviceFingerprint string        `json:"deviceFingerprint"`
	BatchID           string        `json:"batchId"`
	SentAt            string        `json:"sentAt"`
}
