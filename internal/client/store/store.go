package store

import (
	"sync"

	"inflo_backend/internal/models"
)

// Store holds the client session state behind a mutex. Every reader gets a
// copy; mutations go through the methods below so the persisted subset can
// be written out after each change.
type Store struct {
	mu sync.RWMutex

	user            *models.User
	isAuthenticated bool
	campaigns       []models.Campaign
	appliedIDs      []string
	creators        []models.CreatorProfile
	isLoading       bool
	lastError       string

	persister *Persister
}

// New returns an empty store. If persister is non-nil every mutation of the
// persisted subset is followed by a snapshot write.
func New(persister *Persister) *Store {
	return &Store{persister: persister}
}

// Load restores the persisted subset from disk. A missing snapshot leaves
// the store empty and is not an error.
func (s *Store) Load() error {
	if s.persister == nil {
		return nil
	}

	snap, err := s.persister.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = snap.User
	s.isAuthenticated = snap.IsAuthenticated
	s.campaigns = snap.Campaigns
	s.appliedIDs = snap.AppliedCampaigns
	return nil
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	snap := &Snapshot{
		User:             s.user,
		IsAuthenticated:  s.isAuthenticated,
		Campaigns:        s.campaigns,
		AppliedCampaigns: s.appliedIDs,
	}
	s.persister.Save(snap)
}

// SetUser replaces the session user.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user != nil {
		u := *user
		s.user = &u
	} else {
		s.user = nil
	}
	s.persistLocked()
}

// UpdateUser shallow-merges the update into the current user. Without a
// user the call is a no-op.
func (s *Store) UpdateUser(upd *models.UserUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || upd == nil {
		return
	}
	upd.ApplyTo(s.user)
	s.persistLocked()
}

// User returns a copy of the session user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) SetAuthenticated(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAuthenticated = v
	s.persistLocked()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// IsOnboarded reports whether a user exists and finished onboarding.
func (s *Store) IsOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsOnboardingComplete
}

// Logout clears the user, the authentication flag and every cached
// catalog/engagement list. The snapshot file stays, holding the cleared
// state.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.isAuthenticated = false
	s.campaigns = nil
	s.appliedIDs = nil
	s.creators = nil
	s.persistLocked()
}

// ClearAllData resets the whole store and removes the snapshot file.
func (s *Store) ClearAllData() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.isAuthenticated = false
	s.campaigns = nil
	s.appliedIDs = nil
	s.creators = nil
	s.isLoading = false
	s.lastError = ""
	if s.persister == nil {
		return nil
	}
	return s.persister.Remove()
}

// SetCampaigns replaces the cached campaign list.
func (s *Store) SetCampaigns(campaigns []models.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append([]models.Campaign(nil), campaigns...)
	s.persistLocked()
}

// AddCampaign prepends a campaign, newest first like the brand dashboard.
func (s *Store) AddCampaign(c models.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append([]models.Campaign{c}, s.campaigns...)
	s.persistLocked()
}

// UpdateCampaign shallow-merges upd into the campaign with the given ID.
// Unknown IDs are a no-op.
func (s *Store) UpdateCampaign(id string, upd *models.CampaignUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if upd == nil {
		return
	}
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			upd.ApplyTo(&s.campaigns[i])
			s.persistLocked()
			return
		}
	}
}

// Campaigns returns a copy of the cached campaign list.
func (s *Store) Campaigns() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Campaign(nil), s.campaigns...)
}

// ApplyToCampaign records a local application: the creator joins the cached
// campaign's applicant list and the campaign ID joins the applied set.
// Applying twice to the same campaign, or to an ID not in the cache,
// changes nothing.
func (s *Store) ApplyToCampaign(id, creatorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var campaign *models.Campaign
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			campaign = &s.campaigns[i]
			break
		}
	}
	if campaign == nil {
		return
	}

	changed := campaign.AddApplicant(creatorID)
	for _, applied := range s.appliedIDs {
		if applied == id {
			if changed {
				s.persistLocked()
			}
			return
		}
	}
	s.appliedIDs = append(s.appliedIDs, id)
	s.persistLocked()
}

// AppliedCampaigns returns the IDs the session user has applied to, in
// application order.
func (s *Store) AppliedCampaigns() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.appliedIDs...)
}

// HasApplied reports whether the session user applied to the campaign.
func (s *Store) HasApplied(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, applied := range s.appliedIDs {
		if applied == id {
			return true
		}
	}
	return false
}

// SetCreatorProfiles replaces the cached creator list. Not persisted.
func (s *Store) SetCreatorProfiles(creators []models.CreatorProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creators = append([]models.CreatorProfile(nil), creators...)
}

// CreatorProfiles returns a copy of the cached creator list.
func (s *Store) CreatorProfiles() []models.CreatorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CreatorProfile(nil), s.creators...)
}

// SetLoading flags an in-flight remote call. Not persisted.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = v
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// SetError records the last remote error message, empty to clear. Not
// persisted.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = msg
}

func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
