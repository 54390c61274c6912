package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/orgsettings"
)

// OrgService manages per-tenant settings.
type OrgService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewOrgService creates an OrgService.
func NewOrgService(client *ent.Client, logger *slog.Logger) *OrgService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrgService{client: client, logger: logger}
}

// GetSettings loads an org's settings, creating the defaults row on first
// access.
func (s *OrgService) GetSettings(ctx context.Context, orgID string) (*ent.OrgSettings, error) {
	if orgID == "" {
		return nil, NewValidationError("orgId", "orgId is required")
	}

	settings, err := s.client.OrgSettings.Query().
		Where(orgsettings.IDEQ(orgID)).
		Only(ctx)
	if err == nil {
		return settings, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get org settings: %w", err)
	}

	settings, err = s.client.OrgSettings.Create().
		SetID(orgID).
		Save(ctx)
	if err != nil {
		// A concurrent request may have created it first.
		if ent.IsConstraintError(err) {
			settings, err = s.client.OrgSettings.Query().
				Where(orgsettings.IDEQ(orgID)).
				Only(ctx)
			if err == nil {
				return settings, nil
			}
		}
		return nil, fmt.Errorf("failed to create org settings: %w", err)
	}
	return settings, nil
}
