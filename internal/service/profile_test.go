package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

func newTestProfileService() *ProfileService {
	return NewProfileService(NewSessionStore(nil))
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestCreateUsesFactoryDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService()
	userID := uuid.New()

	profile := svc.Create(ctx, userID, "eddie", "eddie@example.com")

	assert.Equal(t, "eddie", profile.Name)
	assert.Equal(t, "E", profile.AvatarInitial)
	assert.Equal(t, 2000.0, profile.CalorieGoal)
	assert.Equal(t, 150.0, profile.ProteinGoal)
	assert.Equal(t, 2000, profile.WaterGoal)
	assert.Zero(t, profile.Streak)
	assert.Zero(t, profile.Points)
	assert.Empty(t, profile.EarnedBadges)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService()
	userID := uuid.New()
	svc.Create(ctx, userID, "eddie", "eddie@example.com")

	updated := svc.Update(ctx, userID, types.ProfilePatch{
		CalorieGoal: floatPtr(1800),
		Age:         intPtr(35),
	})

	assert.Equal(t, 1800.0, updated.CalorieGoal)
	assert.Equal(t, 35, updated.Age)
	// Untouched fields keep their values.
	assert.Equal(t, "eddie", updated.Name)
	assert.Equal(t, 150.0, updated.ProteinGoal)
}

func TestUpdateNameRecomputesAvatarInitial(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService()
	userID := uuid.New()
	svc.Create(ctx, userID, "eddie", "eddie@example.com")

	updated := svc.Update(ctx, userID, types.ProfilePatch{Name: strPtr("samira")})
	assert.Equal(t, "S", updated.AvatarInitial)

	updated = svc.Update(ctx, userID, types.ProfilePatch{Name: strPtr("")})
	assert.Equal(t, "?", updated.AvatarInitial)
}

func TestResetRestoresDefaultsKeepingIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService()
	userID := uuid.New()
	svc.Create(ctx, userID, "eddie", "eddie@example.com")

	svc.Update(ctx, userID, types.ProfilePatch{CalorieGoal: floatPtr(1500)})
	svc.Mutate(ctx, userID, func(p *models.Profile) {
		p.Streak = 5
		p.Points = 120
		p.EarnedBadges = append(p.EarnedBadges, models.BadgeFirstScan)
	})

	profile := svc.Reset(ctx, userID)
	assert.Equal(t, "eddie", profile.Name)
	assert.Equal(t, "eddie@example.com", profile.Email)
	assert.Equal(t, 2000.0, profile.CalorieGoal)
	assert.Zero(t, profile.Points)
	assert.Empty(t, profile.EarnedBadges)
}
