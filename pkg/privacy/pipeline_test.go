package privacy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/intent"
	"github.com/ghostworks/ghostd/pkg/models"
)

func passwordEvent(ts int64) *models.RawEvent {
	return &models.RawEvent{
		Timestamp: ts,
		SessionID: "session-1",
		EventType: models.EventTypeUserInteraction,
		Payload: models.RawPayload{
			Action: "input",
			Value:  "password: hunter2",
			Target: &models.Fingerprint{
				TagName:     "input",
				InputType:   "password",
				DOMPath:     []string{"body", "form", "input"},
				TextPreview: "hunter2",
			},
		},
		Context: models.PageContext{URL: "https://app.example.com/login?next=/billing"},
	}
}

func TestProcess_NoUserContentCrossesTheBoundary(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")

	secure := p.Process(passwordEvent(1_700_000_000_000))
	require.NotNil(t, secure)

	encoded, err := json.Marshal(secure)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "hunter2")
	assert.NotContains(t, string(encoded), "login")
	assert.NotContains(t, string(encoded), "billing")
}

func TestProcess_PopulatesSecureFields(t *testing.T) {
	ts := int64(1_700_000_000_000)
	p := NewPipeline("org-1", "device-1", "user-1")

	secure := p.Process(passwordEvent(ts))
	require.NotNil(t, secure)

	assert.Equal(t, "org-1", secure.OrgID)
	assert.Equal(t, models.EventTypeUserInteraction, secure.EventType)
	assert.Equal(t, models.IntentAuthentication, secure.IntentLabel)
	assert.InDelta(t, 0.85, secure.IntentConfidence, 1e-9)
	assert.Equal(t, SessionFingerprint("device-1", "user-1", ts), secure.SessionFingerprint)
	assert.Len(t, secure.IntentVector, intent.VectorDim)

	require.Len(t, secure.StructuralHash, 8)
	assert.Equal(t, StructuralHash([]string{"body", "form", "input"}, "input"), secure.StructuralHash)
	assert.Equal(t, "input@body>form>input", secure.ElementSignature)

	bucket, err := time.Parse(time.RFC3339, secure.TimestampBucket)
	require.NoError(t, err)
	assert.Zero(t, bucket.Unix()%300)
}

func TestProcess_SequenceNumbersAreMonotone(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")

	for want := 1; want <= 5; want++ {
		secure := p.Process(passwordEvent(1_700_000_000_000))
		require.NotNil(t, secure)
		assert.Equal(t, want, secure.SequenceNumber)
	}
}

func TestProcess_DoesNotMutateCallerEvent(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")
	raw := passwordEvent(1_700_000_000_000)

	_ = p.Process(raw)

	assert.Equal(t, "password: hunter2", raw.Payload.Value)
	assert.Equal(t, "hunter2", raw.Payload.Target.TextPreview)
	assert.Equal(t, "https://app.example.com/login?next=/billing", raw.Context.URL)
}

func TestProcess_MutationTargetFallback(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")

	secure := p.Process(&models.RawEvent{
		Timestamp: 1_700_000_000_000,
		EventType: models.EventTypeDOMMutation,
		Payload: models.RawPayload{
			Mutations: []models.MutationRecord{{
				AddedNodes: 1,
				NewValue:   "alice@example.com",
				Target: &models.Fingerprint{
					TagName: "input",
					DOMPath: []string{"body", "form", "input"},
				},
			}},
		},
	})
	require.NotNil(t, secure)

	assert.NotEmpty(t, secure.StructuralHash)
	encoded, err := json.Marshal(secure)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "alice@example.com")
}

func TestProcess_ClassifiesNetworkURLBeforeHashing(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")

	networkEvent := func(method, url string) *models.RawEvent {
		return &models.RawEvent{
			Timestamp: 1_700_000_000_000,
			SessionID: "session-1",
			EventType: models.EventTypeNetwork,
			Payload:   models.RawPayload{Method: method, URL: url, Status: 200},
			Context:   models.PageContext{URL: url},
		}
	}

	secure := p.Process(networkEvent("POST", "https://api.example.com/auth/login"))
	require.NotNil(t, secure)
	assert.Equal(t, models.IntentAuthentication, secure.IntentLabel)
	assert.InDelta(t, 0.85, secure.IntentConfidence, 1e-9)

	secure = p.Process(networkEvent("GET", "https://api.example.com/search?q=x"))
	require.NotNil(t, secure)
	assert.Equal(t, models.IntentResearch, secure.IntentLabel)
	assert.InDelta(t, 0.70, secure.IntentConfidence, 1e-9)
}

func TestProcess_SessionRotationResetsState(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")

	_ = p.Process(passwordEvent(1_700_000_000_000))
	_ = p.Process(passwordEvent(1_700_000_000_000))
	assert.Equal(t, "[EMAIL_1]", p.Scrubber().Scrub("alice@example.com"))
	assert.Equal(t, "[EMAIL_2]", p.Scrubber().Scrub("bob@example.com"))

	rotated := passwordEvent(1_700_000_900_000)
	rotated.SessionID = "session-2"
	secure := p.Process(rotated)
	require.NotNil(t, secure)

	// Rotation restarts both the sequence counter and the token numbering.
	assert.Equal(t, 1, secure.SequenceNumber)
	assert.Equal(t, "[EMAIL_1]", p.Scrubber().Scrub("bob@example.com"))
}

func TestProcess_NilEvent(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")
	assert.Nil(t, p.Process(nil))
}

func TestReset_RestartsSequence(t *testing.T) {
	p := NewPipeline("org-1", "device-1", "user-1")

	_ = p.Process(passwordEvent(1_700_000_000_000))
	_ = p.Process(passwordEvent(1_700_000_000_000))
	p.Reset()

	secure := p.Process(passwordEvent(1_700_000_000_000))
	require.NotNil(t, secure)
	assert.Equal(t, 1, secure.SequenceNumber)
}
