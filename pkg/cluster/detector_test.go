package cluster

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/llm/llmtest"
	"github.com/ghostworks/ghostd/pkg/models"
)

// fakeStore serves canned events and records upserts keyed by pattern ID.
type fakeStore struct {
	events    []models.SecureEvent
	eventsErr error
	upsertErr error

	patterns map[string]*Pattern
	upserts  int
}

func newFakeStore(events []models.SecureEvent) *fakeStore {
	return &fakeStore{events: events, patterns: make(map[string]*Pattern)}
}

func (s *fakeStore) RecentEvents(_ context.Context, _ string, limit int) ([]models.SecureEvent, error) {
	if s.eventsErr != nil {
		return nil, s.eventsErr
	}
	if len(s.events) > limit {
		return s.events[:limit], nil
	}
	return s.events, nil
}

func (s *fakeStore) UpsertPattern(_ context.Context, p *Pattern) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserts++
	s.patterns[p.ID] = p
	return nil
}

var testVector = []float64{0.6, 0.8, 0, 0}

// workflowEvents emits sessions of three events each, all sharing the same
// intent sequence and embedding so they cluster together.
func workflowEvents(sessions int) []models.SecureEvent {
	labels := []models.IntentClass{
		models.IntentNavigation,
		models.IntentDataEntry,
		models.IntentApproval,
	}
	hashes := []string{"aa11bb22", "cc33dd44", "ee55ff66"}

	var events []models.SecureEvent
	for s := 0; s < sessions; s++ {
		session := "session-" + string(rune('a'+s))
		for i, label := range labels {
			events = append(events, models.SecureEvent{
				SessionFingerprint: session,
				OrgID:              "org-1",
				EventType:          models.EventTypeUserInteraction,
				IntentLabel:        label,
				IntentConfidence:   0.9,
				IntentVector:       testVector,
				StructuralHash:     hashes[i],
				TimestampBucket:    "2026-08-24T10:00:00Z",
				SequenceNumber:     i + 1,
			})
		}
	}
	return events
}

func TestDetect_PersistsRecurringWorkflow(t *testing.T) {
	store := newFakeStore(workflowEvents(10))
	d := NewDetector(store, nil, slog.Default())

	patterns, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, "org-1", p.OrgID)
	assert.Equal(t, []string{"navigation", "data_entry", "approval"}, p.IntentSequence)
	assert.Equal(t, []string{"aa11bb22", "cc33dd44", "ee55ff66"}, p.StructuralHashes)
	assert.Equal(t, 10, p.Occurrences)
	// Statistical confidence 0.97 fused with the default LLM component 0.5.
	assert.InDelta(t, 0.78, p.Confidence, 1e-9)
	assert.Equal(t, StatusNeedsReview, p.Status)
	assert.Equal(t, patternID("org-1", p.IntentSequence), p.ID)
	require.Len(t, store.patterns, 1)
}

// overlappingWindowEvents emits sessions of five events each, so every
// session contributes three overlapping sliding windows to the cluster.
func overlappingWindowEvents(sessions int) []models.SecureEvent {
	labels := []models.IntentClass{
		models.IntentNavigation,
		models.IntentDataEntry,
		models.IntentDataEntry,
		models.IntentWorkflowTransition,
		models.IntentWorkflowTransition,
	}

	var events []models.SecureEvent
	for s := 0; s < sessions; s++ {
		session := "session-" + string(rune('a'+s))
		for i, label := range labels {
			events = append(events, models.SecureEvent{
				SessionFingerprint: session,
				OrgID:              "org-1",
				EventType:          models.EventTypeUserInteraction,
				IntentLabel:        label,
				IntentConfidence:   0.9,
				IntentVector:       testVector,
				TimestampBucket:    "2026-08-24T10:00:00Z",
				SequenceNumber:     i + 1,
			})
		}
	}
	return events
}

func TestDetect_OccurrencesCountSessionsNotWindows(t *testing.T) {
	store := newFakeStore(overlappingWindowEvents(3))
	d := NewDetector(store, nil, slog.Default())

	patterns, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	p := patterns[0]
	// Nine windows land in one cluster, but they come from three sessions.
	assert.Equal(t, 3, p.Occurrences)
	assert.Equal(t, []string{"navigation", "data_entry", "workflow_transition"}, p.IntentSequence)
	assert.InDelta(t, 0.71, p.Confidence, 1e-9)
	assert.Equal(t, StatusNeedsReview, p.Status)
	assert.Equal(t, patternID("org-1", p.IntentSequence), p.ID)
}

func TestDetect_IdempotentAcrossRuns(t *testing.T) {
	store := newFakeStore(workflowEvents(10))
	d := NewDetector(store, nil, slog.Default())

	first, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	second, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, store.patterns, 1)
	assert.Equal(t, 2, store.upserts)
}

func TestDetect_LiftingNamesThePattern(t *testing.T) {
	store := newFakeStore(workflowEvents(10))
	scripted := llmtest.NewScriptedClient(
		`Here you go:` + "\n" + `{"name": "Invoice approval", "description": "Reviews and approves invoices.", "confidence": 1.0}`)
	d := NewDetector(store, scripted, slog.Default())

	patterns, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, "Invoice approval", p.SuggestedName)
	assert.Equal(t, "Reviews and approves invoices.", p.SuggestedDescription)
	// 0.6*0.97 + 0.4*1.0, rounded to two decimals.
	assert.InDelta(t, 0.98, p.Confidence, 1e-9)
	assert.Equal(t, StatusAutoSuggested, p.Status)

	calls := scripted.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[1].Content, "navigation (user_int) -> data_entry (user_int) -> approval (user_int)")
}

func TestDetect_LiftFailureKeepsStatisticalPattern(t *testing.T) {
	store := newFakeStore(workflowEvents(10))
	scripted := llmtest.NewScriptedClient()
	scripted.Err = errors.New("model unavailable")
	d := NewDetector(store, scripted, slog.Default())

	patterns, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	assert.Empty(t, patterns[0].SuggestedName)
	assert.InDelta(t, 0.78, patterns[0].Confidence, 1e-9)
	assert.Equal(t, StatusNeedsReview, patterns[0].Status)
}

func TestDetect_BelowReviewThresholdIsDropped(t *testing.T) {
	// Three sessions give statistical confidence 0.76; fused with the
	// default 0.5 that lands at 0.66, under the review threshold.
	store := newFakeStore(workflowEvents(3))
	d := NewDetector(store, nil, slog.Default())

	patterns, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Empty(t, patterns)
	assert.Zero(t, store.upserts)
}

func TestDetect_SmallClustersAreDropped(t *testing.T) {
	store := newFakeStore(workflowEvents(2))
	d := NewDetector(store, nil, slog.Default())

	patterns, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestDetect_NoEvents(t *testing.T) {
	store := newFakeStore(nil)
	d := NewDetector(store, nil, slog.Default())

	patterns, err := d.Detect(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Nil(t, patterns)
}

func TestDetect_StoreErrorsPropagate(t *testing.T) {
	store := newFakeStore(nil)
	store.eventsErr = errors.New("connection refused")
	d := NewDetector(store, nil, slog.Default())

	_, err := d.Detect(context.Background(), "org-1")
	assert.ErrorContains(t, err, "failed to read events")

	store = newFakeStore(workflowEvents(10))
	store.upsertErr = errors.New("insert failed")
	d = NewDetector(store, nil, slog.Default())

	_, err = d.Detect(context.Background(), "org-1")
	assert.ErrorContains(t, err, "failed to persist pattern")
}

func TestClusterSequences_SeparatesDissimilarSequences(t *testing.T) {
	similar := EventSequence{Embedding: []float64{1, 0, 0, 0}}
	orthogonal := EventSequence{Embedding: []float64{0, 1, 0, 0}}

	groups := clusterSequences([]EventSequence{
		similar, similar, similar,
		orthogonal, orthogonal, orthogonal,
	})
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].members, 3)
	assert.Len(t, groups[1].members, 3)
}

func TestClusterSequences_TemporalWindowSplitsClusters(t *testing.T) {
	near := EventSequence{Embedding: []float64{1, 0}, At: parseBucket("2026-08-24T10:00:00Z")}
	far := EventSequence{Embedding: []float64{1, 0}, At: parseBucket("2026-08-24T11:00:00Z")}

	groups := clusterSequences([]EventSequence{near, near, near, far, far, far})
	require.Len(t, groups, 2)
}

func TestPatternID_Deterministic(t *testing.T) {
	a := patternID("org-1", []string{"navigation", "data_entry"})
	b := patternID("org-1", []string{"navigation", "data_entry"})
	c := patternID("org-2", []string{"navigation", "data_entry"})

	require.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
