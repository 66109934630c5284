package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

// ProfileService owns the mutable per-user profile records. Profiles live in
// memory for the session and are written through to the session store on
// every change. All mutation goes through partial-field merges; the record is
// only replaced wholesale on reset.
type ProfileService struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.Profile
	sessions *SessionStore
}

func NewProfileService(sessions *SessionStore) *ProfileService {
	return &ProfileService{
		profiles: make(map[uuid.UUID]*models.Profile),
		sessions: sessions,
	}
}

// loadLocked returns the in-memory profile, restoring it from the session
// store or factory defaults on first access. Callers must hold mu.
func (s *ProfileService) loadLocked(ctx context.Context, userID uuid.UUID) *models.Profile {
	if profile, ok := s.profiles[userID]; ok {
		return profile
	}

	var profile models.Profile
	if stored, ok := s.sessions.LoadProfile(ctx, userID); ok {
		profile = stored
	} else {
		profile = models.DefaultProfile("", "")
	}
	if profile.EarnedBadges == nil {
		profile.EarnedBadges = []string{}
	}
	s.profiles[userID] = &profile
	return &profile
}

// Create installs a factory-default profile for a newly registered user.
func (s *ProfileService) Create(ctx context.Context, userID uuid.UUID, name, email string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := models.DefaultProfile(name, email)
	s.profiles[userID] = &profile
	s.sessions.SaveProfile(ctx, userID, profile)
	return profile
}

// Get returns a copy of the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.loadLocked(ctx, userID)
}

// Update merges the patch into the profile, incoming fields winning. A name
// change also recomputes the derived avatar initial. The service performs no
// range validation; that is the caller's concern.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, patch types.ProfilePatch) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.loadLocked(ctx, userID)
	if patch.Name != nil {
		profile.Name = *patch.Name
		profile.AvatarInitial = models.AvatarInitial(*patch.Name)
	}
	if patch.Email != nil {
		profile.Email = *patch.Email
	}
	if patch.CalorieGoal != nil {
		profile.CalorieGoal = *patch.CalorieGoal
	}
	if patch.ProteinGoal != nil {
		profile.ProteinGoal = *patch.ProteinGoal
	}
	if patch.CarbsGoal != nil {
		profile.CarbsGoal = *patch.CarbsGoal
	}
	if patch.FatGoal != nil {
		profile.FatGoal = *patch.FatGoal
	}
	if patch.WaterGoal != nil {
		profile.WaterGoal = *patch.WaterGoal
	}
	if patch.Weight != nil {
		profile.Weight = *patch.Weight
	}
	if patch.Height != nil {
		profile.Height = *patch.Height
	}
	if patch.Age != nil {
		profile.Age = *patch.Age
	}
	if patch.ActivityLevel != nil {
		profile.ActivityLevel = *patch.ActivityLevel
	}

	s.sessions.SaveProfile(ctx, userID, *profile)
	return *profile
}

// Mutate runs fn against the profile under the store lock and persists the
// result as one merge. The gamification engine uses this so a single user
// action yields a single coherent state transition.
func (s *ProfileService) Mutate(ctx context.Context, userID uuid.UUID, fn func(*models.Profile)) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.loadLocked(ctx, userID)
	fn(profile)
	s.sessions.SaveProfile(ctx, userID, *profile)
	return *profile
}

// Reset restores the factory-default profile, keeping only the account
// identity. Used on logout.
func (s *ProfileService) Reset(ctx context.Context, userID uuid.UUID) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.loadLocked(ctx, userID)
	profile := models.DefaultProfile(current.Name, current.Email)
	s.profiles[userID] = &profile
	s.sessions.SaveProfile(ctx, userID, profile)
	return profile
}

// Forget drops the in-memory record, e.g. after logout cleared the session.
func (s *ProfileService) Forget(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
}
