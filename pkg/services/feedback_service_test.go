package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/test/util"
)

func intPtr(n int) *int { return &n }

func TestSubmitFeedback_Persists(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewFeedbackService(client, slog.Default())

	fb, err := svc.SubmitFeedback(ctx, SubmitFeedbackRequest{
		ExecutionID:       "exec-1",
		GhostID:           "ghost-1",
		OrgID:             "org-1",
		UserID:            "user-7",
		SatisfactionScore: intPtr(4),
		CorrectedActions:  map[string]any{"step": "extract", "selector": "#total"},
		Notes:             "picked the wrong column",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)
	require.NotNil(t, fb.SatisfactionScore)
	assert.Equal(t, 4, *fb.SatisfactionScore)

	rows, err := svc.ListFeedback(ctx, "org-1", "exec-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Notes)
	assert.Equal(t, "picked the wrong column", *rows[0].Notes)
	assert.Equal(t, "extract", rows[0].CorrectedActions["step"])
}

func TestSubmitFeedback_Validation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewFeedbackService(client, slog.Default())

	_, err := svc.SubmitFeedback(ctx, SubmitFeedbackRequest{ExecutionID: "exec-1"})
	assert.True(t, IsValidationError(err))

	_, err = svc.SubmitFeedback(ctx, SubmitFeedbackRequest{OrgID: "org-1"})
	assert.True(t, IsValidationError(err))

	_, err = svc.SubmitFeedback(ctx, SubmitFeedbackRequest{
		OrgID:             "org-1",
		ExecutionID:       "exec-1",
		SatisfactionScore: intPtr(0),
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.SubmitFeedback(ctx, SubmitFeedbackRequest{
		OrgID:             "org-1",
		ExecutionID:       "exec-1",
		SatisfactionScore: intPtr(6),
	})
	assert.True(t, IsValidationError(err))
}

func TestSubmitFeedback_ScoreIsOptional(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewFeedbackService(client, slog.Default())

	fb, err := svc.SubmitFeedback(ctx, SubmitFeedbackRequest{
		ExecutionID: "exec-1",
		OrgID:       "org-1",
		Notes:       "worked fine",
	})
	require.NoError(t, err)
	assert.Nil(t, fb.SatisfactionScore)
}

func TestListFeedback_OrderedAndScoped(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewFeedbackService(client, slog.Default())

	for _, notes := range []string{"first", "second", "third"} {
		_, err := svc.SubmitFeedback(ctx, SubmitFeedbackRequest{
			ExecutionID: "exec-1",
			OrgID:       "org-1",
			Notes:       notes,
		})
		require.NoError(t, err)
	}
	_, err := svc.SubmitFeedback(ctx, SubmitFeedbackRequest{
		ExecutionID: "exec-1",
		OrgID:       "org-2",
		Notes:       "other tenant",
	})
	require.NoError(t, err)

	rows, err := svc.ListFeedback(ctx, "org-1", "exec-1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.NotNil(t, rows[0].Notes)
	assert.Equal(t, "first", *rows[0].Notes)
	require.NotNil(t, rows[2].Notes)
	assert.Equal(t, "third", *rows[2].Notes)

	_, err = svc.ListFeedback(ctx, "", "exec-1")
	assert.True(t, IsValidationError(err))
}

func TestFeedback_IsAppendOnly(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewFeedbackService(client, slog.Default())
	fb, err := svc.SubmitFeedback(ctx, SubmitFeedbackRequest{
		ExecutionID: "exec-1",
		OrgID:       "org-1",
		Notes:       "original",
	})
	require.NoError(t, err)

	err = client.UserFeedback.UpdateOneID(fb.ID).
		SetNotes("revised").
		Exec(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append-only")

	err = client.UserFeedback.DeleteOneID(fb.ID).Exec(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append-only")
}
