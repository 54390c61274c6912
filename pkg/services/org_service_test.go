package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/test/util"
)

func TestGetSettings_CreatesDefaultsOnFirstAccess(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewOrgService(client, slog.Default())

	settings, err := svc.GetSettings(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, "org-1", settings.ID)
	assert.InDelta(t, 0.95, settings.AutoApproveThreshold, 1e-9)
	assert.Equal(t, 10, settings.MaxExecutionsPerMinute)
}

func TestGetSettings_ReturnsExistingRow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewOrgService(client, slog.Default())

	first, err := svc.GetSettings(ctx, "org-1")
	require.NoError(t, err)

	// Customize, then confirm a second lookup does not reset the row.
	err = client.OrgSettings.UpdateOneID("org-1").
		SetMaxExecutionsPerMinute(25).
		Exec(ctx)
	require.NoError(t, err)

	second, err := svc.GetSettings(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 25, second.MaxExecutionsPerMinute)

	count, err := client.OrgSettings.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetSettings_RequiresOrg(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewOrgService(client, slog.Default())

	_, err := svc.GetSettings(context.Background(), "")
	assert.True(t, IsValidationError(err))
}
