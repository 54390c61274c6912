package privacy

import (
	"encoding/json"

	"github.com/ghostworks/ghostd/pkg/intent"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/scrub"
)

// Pipeline orchestrates scrub → encode → perturb for every raw event and
// emits the secure event that crosses the device boundary. It owns the
// monotone per-pipeline sequence counter and the scrubber's token table.
//
// Process never returns an error: malformed inputs yield best-effort secure
// events with the affected field omitted.
type Pipeline struct {
	orgID    string
	deviceID string
	userID   string

	scrubber  *scrub.Scrubber
	dpu       *DPU
	seq       int
	sessionID string
}

// NewPipeline creates a pipeline bound to one (org, device, user) identity.
func NewPipeline(orgID, deviceID, userID string) *Pipeline {
	return &Pipeline{
		orgID:    orgID,
		deviceID: deviceID,
		userID:   userID,
		scrubber: scrub.NewScrubber(),
		dpu:      NewDPU(DefaultEpsilon),
	}
}

// Scrubber exposes the pipeline's scrubber, shared so that token numbering
// stays consistent across all fields of a session.
func (p *Pipeline) Scrubber() *scrub.Scrubber { return p.scrubber }

// Process consumes one raw event and returns the secure event. The raw
// event is deep-copied first; the caller's copy is never mutated and must be
// discarded after the call.
func (p *Pipeline) Process(raw *models.RawEvent) *models.SecureEvent {
	if raw == nil {
		return nil
	}
	if raw.SessionID != "" && raw.SessionID != p.sessionID {
		if p.sessionID != "" {
			p.Reset()
		}
		p.sessionID = raw.SessionID
	}
	ev := deepCopy(raw)

	// Classification reads the plaintext payload URL; scrubbing replaces
	// every URL with its hashed form right after.
	cls, vector := intent.Encode(ev)

	p.scrubEvent(ev)

	target := ev.Payload.Target
	if target == nil && len(ev.Payload.Mutations) > 0 {
		target = ev.Payload.Mutations[0].Target
	}

	p.seq++
	secure := &models.SecureEvent{
		SessionFingerprint: SessionFingerprint(p.deviceID, p.userID, ev.Timestamp),
		TimestampBucket:    p.dpu.AnonymizeTimestamp(ev.Timestamp),
		IntentVector:       p.dpu.PerturbVector(vector),
		OrgID:              p.orgID,
		EventType:          ev.EventType,
		IntentLabel:        cls.Label,
		IntentConfidence:   cls.Confidence,
		SequenceNumber:     p.seq,
	}
	if target != nil {
		secure.StructuralHash = StructuralHash(target.DOMPath, target.TagName)
		secure.ElementSignature = ElementSignature(target)
	}
	return secure
}

// Reset zeros the sequence counter and the PII token table. Process invokes
// it automatically when the incoming session ID rotates.
func (p *Pipeline) Reset() {
	p.seq = 0
	p.scrubber.Reset()
}

// scrubEvent removes user content from every field that can carry it and
// replaces the payload and context URLs with their hashed forms.
func (p *Pipeline) scrubEvent(ev *models.RawEvent) {
	payload := &ev.Payload
	payload.Value = p.scrubber.Scrub(payload.Value)
	payload.Message = p.scrubber.Scrub(payload.Message)
	payload.URL = HashURL(payload.URL)
	ev.Context.URL = HashURL(ev.Context.URL)
	for i := range payload.Mutations {
		payload.Mutations[i].OldValue = p.scrubber.Scrub(payload.Mutations[i].OldValue)
		payload.Mutations[i].NewValue = p.scrubber.Scrub(payload.Mutations[i].NewValue)
		if t := payload.Mutations[i].Target; t != nil {
			t.TextPreview = ""
		}
	}
	if payload.Target != nil {
		payload.Target.TextPreview = ""
	}
}

// deepCopy clones a raw event through JSON so the pipeline can mutate it
// freely. A clone failure degrades to an empty event of the same type
// rather than propagating an error across the privacy boundary.
func deepCopy(raw *models.RawEvent) *models.RawEvent {
	data, err := json.Marshal(raw)
	if err != nil {
		return &models.RawEvent{Timestamp: raw.Timestamp, SessionID: raw.SessionID, EventType: raw.EventType}
	}
	var out models.RawEvent
	if err := json.Unmarshal(data, &out); err != nil {
		return &models.RawEvent{Timestamp: raw.Timestamp, SessionID: raw.SessionID, EventType: raw.EventType}
	}
	return &out
}
