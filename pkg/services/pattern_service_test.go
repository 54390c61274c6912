package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
	"github.com/ghostworks/ghostd/pkg/llm/llmtest"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/test/util"
)

// seedWorkflowSessions ingests the same three-step workflow for n sessions so
// detection finds one recurring pattern.
func seedWorkflowSessions(t *testing.T, client *ent.Client, n int) {
	t.Helper()
	svc := NewIngestService(client, nil, slog.Default())

	labels := []models.IntentClass{
		models.IntentNavigation,
		models.IntentDataEntry,
		models.IntentApproval,
	}
	var events []models.SecureEvent
	for s := 0; s < n; s++ {
		session := "session-" + string(rune('a'+s))
		for i, label := range labels {
			ev := secureTestEvent("org-1", session, i+1)
			ev.IntentLabel = label
			events = append(events, ev)
		}
	}
	_, err := svc.Ingest(context.Background(), &models.SecureEventBatch{Events: events}, "device-1")
	require.NoError(t, err)
}

func TestDetectPatterns_PersistsAndIsIdempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedWorkflowSessions(t, client, 10)

	svc := NewPatternService(client, nil, nil, slog.Default())

	patterns, err := svc.DetectPatterns(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, []string{"navigation", "data_entry", "approval"}, patterns[0].IntentSequence)

	rows, err := svc.ListPatterns(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, detectedpattern.StatusNeedsReview, rows[0].Status)
	assert.Equal(t, 10, rows[0].Occurrences)

	// Re-detection refreshes the same row instead of duplicating it.
	_, err = svc.DetectPatterns(ctx, "org-1")
	require.NoError(t, err)

	rows, err = svc.ListPatterns(ctx, "org-1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDetectPatterns_LiftedSuggestionsPersist(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedWorkflowSessions(t, client, 10)

	scripted := llmtest.NewScriptedClient(
		`{"name": "Invoice approval", "description": "Approves uploaded invoices.", "confidence": 1.0}`)
	svc := NewPatternService(client, scripted, nil, slog.Default())

	_, err := svc.DetectPatterns(ctx, "org-1")
	require.NoError(t, err)

	rows, err := svc.ListPatterns(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, detectedpattern.StatusAutoSuggested, rows[0].Status)
	require.NotNil(t, rows[0].SuggestedName)
	assert.Equal(t, "Invoice approval", *rows[0].SuggestedName)
}

func TestDismissPattern_Sticks(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedWorkflowSessions(t, client, 10)

	svc := NewPatternService(client, nil, nil, slog.Default())
	patterns, err := svc.DetectPatterns(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	require.NoError(t, svc.DismissPattern(ctx, "org-1", patterns[0].ID))

	// Re-detection must not resurrect a dismissed pattern.
	_, err = svc.DetectPatterns(ctx, "org-1")
	require.NoError(t, err)

	rows, err := svc.ListPatterns(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, detectedpattern.StatusDismissed, rows[0].Status)
}

func TestDismissPattern_OrgScoped(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedWorkflowSessions(t, client, 10)

	svc := NewPatternService(client, nil, nil, slog.Default())
	patterns, err := svc.DetectPatterns(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	err = svc.DismissPattern(ctx, "org-2", patterns[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DismissPattern(ctx, "org-1", "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDetectPatterns_RequiresOrg(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewPatternService(client, nil, nil, slog.Default())

	_, err := svc.DetectPatterns(context.Background(), "")
	assert.True(t, IsValidationError(err))
}

func TestDetectPatterns_QuietOrgFindsNothing(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewPatternService(client, nil, nil, slog.Default())

	patterns, err := svc.DetectPatterns(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Empty(t, patterns)
}
