package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/models"
)

func sessionEvent(session string, seq int, vec []float64) models.SecureEvent {
	return models.SecureEvent{
		SessionFingerprint: session,
		IntentLabel:        models.IntentDataEntry,
		IntentVector:       vec,
		SequenceNumber:     seq,
		TimestampBucket:    "2026-08-24T10:00:00Z",
	}
}

func TestBuildSequences_SlidingWindowsPerSession(t *testing.T) {
	vec := []float64{1, 0}
	events := []models.SecureEvent{
		sessionEvent("s1", 1, vec),
		sessionEvent("s1", 2, vec),
		sessionEvent("s1", 3, vec),
		sessionEvent("s1", 4, vec),
		sessionEvent("s1", 5, vec),
	}

	sequences := buildSequences(events)
	// Windows start at 0, 1 and 2: the tail windows shorter than three
	// events are not emitted.
	require.Len(t, sequences, 3)
	assert.Len(t, sequences[0].Events, 5)
	assert.Len(t, sequences[1].Events, 4)
	assert.Len(t, sequences[2].Events, 3)
	assert.Equal(t, "s1", sequences[0].SessionFingerprint)
	assert.False(t, sequences[0].At.IsZero())
}

func TestBuildSequences_OrdersBySequenceNumber(t *testing.T) {
	vec := []float64{1, 0}
	events := []models.SecureEvent{
		sessionEvent("s1", 3, vec),
		sessionEvent("s1", 1, vec),
		sessionEvent("s1", 2, vec),
	}

	sequences := buildSequences(events)
	require.Len(t, sequences, 1)

	got := make([]int, len(sequences[0].Events))
	for i, ev := range sequences[0].Events {
		got[i] = ev.SequenceNumber
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestBuildSequences_SessionsDoNotMix(t *testing.T) {
	vec := []float64{1, 0}
	events := []models.SecureEvent{
		sessionEvent("s1", 1, vec),
		sessionEvent("s2", 1, vec),
		sessionEvent("s1", 2, vec),
		sessionEvent("s2", 2, vec),
		sessionEvent("s1", 3, vec),
		sessionEvent("s2", 3, vec),
	}

	sequences := buildSequences(events)
	require.Len(t, sequences, 2)
	for _, seq := range sequences {
		for _, ev := range seq.Events {
			assert.Equal(t, seq.SessionFingerprint, ev.SessionFingerprint)
		}
	}
}

func TestBuildSequences_SkipsWindowsWithoutVectors(t *testing.T) {
	events := []models.SecureEvent{
		sessionEvent("s1", 1, nil),
		sessionEvent("s1", 2, nil),
		sessionEvent("s1", 3, nil),
	}
	assert.Empty(t, buildSequences(events))
}

func TestBuildSequences_ShortSessionsSkipped(t *testing.T) {
	vec := []float64{1, 0}
	events := []models.SecureEvent{
		sessionEvent("s1", 1, vec),
		sessionEvent("s1", 2, vec),
	}
	assert.Empty(t, buildSequences(events))
}

func TestMeanEmbedding(t *testing.T) {
	events := []models.SecureEvent{
		sessionEvent("s1", 1, []float64{1, 0}),
		sessionEvent("s1", 2, []float64{0, 1}),
	}
	assert.Equal(t, []float64{0.5, 0.5}, meanEmbedding(events))

	// Mismatched dimensionality is skipped, empty vectors are skipped.
	mixed := []models.SecureEvent{
		sessionEvent("s1", 1, []float64{1, 0}),
		sessionEvent("s1", 2, []float64{1, 0, 0}),
		sessionEvent("s1", 3, nil),
	}
	assert.Equal(t, []float64{1, 0}, meanEmbedding(mixed))

	assert.Nil(t, meanEmbedding(nil))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)

	assert.Zero(t, cosine([]float64{1, 0}, []float64{1, 0, 0}))
	assert.Zero(t, cosine([]float64{0, 0}, []float64{1, 0}))
	assert.Zero(t, cosine(nil, nil))
}

func TestExtractJSONObject(t *testing.T) {
	raw, err := extractJSONObject("```json\n{\"name\": \"x\", \"note\": \"has } in string\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"name": "x", "note": "has } in string"}`, raw)

	_, err = extractJSONObject("no json here")
	assert.Error(t, err)

	_, err = extractJSONObject(`{"unbalanced": true`)
	assert.Error(t, err)
}
