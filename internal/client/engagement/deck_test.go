package engagement

import (
	"context"
	"os"
	"testing"

	"inflo_backend/internal/client/remote"
	"inflo_backend/internal/client/store"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

func newTestDeck(t *testing.T) (*Deck, *store.Store) {
	svc := remote.NewMockService(remote.MockOptions{Seed: 7})
	session := store.New(nil)
	return NewDeck(svc, session, "creator-test"), session
}

func TestDeck_StartsIdle(t *testing.T) {
	d, _ := newTestDeck(t)

	assert.Equal(t, StateIdle, d.State())
	_, ok := d.Current()
	assert.False(t, ok)
	assert.Zero(t, d.Remaining())
}

func TestDeck_LoadCampaignsPresentsFirstCard(t *testing.T) {
	d, session := newTestDeck(t)

	err := d.LoadCampaigns(context.Background(), services.CampaignFilters{Status: models.CampaignStatusActive})
	require.NoError(t, err)

	assert.Equal(t, StatePresenting, d.State())
	card, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, CardCampaign, card.Kind)
	require.NotNil(t, card.Campaign)

	// Loading also refreshes the session cache.
	assert.Equal(t, d.Remaining(), len(session.Campaigns()))
}

func TestDeck_AcceptAppliesAndAdvances(t *testing.T) {
	d, session := newTestDeck(t)
	require.NoError(t, d.LoadCampaigns(context.Background(), services.CampaignFilters{}))

	first, ok := d.Current()
	require.True(t, ok)

	require.NoError(t, d.Accept(context.Background()))

	assert.Equal(t, []string{first.Campaign.ID}, session.AppliedCampaigns())
	next, ok := d.Current()
	require.True(t, ok)
	assert.NotEqual(t, first.Campaign.ID, next.Campaign.ID)
}

func TestDeck_RejectAdvancesWithoutApplying(t *testing.T) {
	d, session := newTestDeck(t)
	require.NoError(t, d.LoadCampaigns(context.Background(), services.CampaignFilters{}))

	before := d.Remaining()
	require.NoError(t, d.Reject(context.Background()))

	assert.Empty(t, session.AppliedCampaigns())
	assert.Equal(t, before-1, d.Remaining())
}

func TestDeck_ExhaustionIsTerminalAndSafe(t *testing.T) {
	d, _ := newTestDeck(t)
	require.NoError(t, d.LoadCampaigns(context.Background(), services.CampaignFilters{}))

	for d.State() == StatePresenting {
		require.NoError(t, d.Reject(context.Background()))
	}
	assert.Equal(t, StateExhausted, d.State())

	// Swiping past the end is a no-op, never an error.
	require.NoError(t, d.Accept(context.Background()))
	require.NoError(t, d.Reject(context.Background()))
	assert.Equal(t, StateExhausted, d.State())
	_, ok := d.Current()
	assert.False(t, ok)
}

func TestDeck_ReloadRestartsPresenting(t *testing.T) {
	d, _ := newTestDeck(t)
	require.NoError(t, d.LoadCampaigns(context.Background(), services.CampaignFilters{}))

	for d.State() == StatePresenting {
		require.NoError(t, d.Reject(context.Background()))
	}
	require.Equal(t, StateExhausted, d.State())

	require.NoError(t, d.LoadCampaigns(context.Background(), services.CampaignFilters{}))
	assert.Equal(t, StatePresenting, d.State())
	_, ok := d.Current()
	assert.True(t, ok)
}

func TestDeck_CreatorCardsShortlist(t *testing.T) {
	d, session := newTestDeck(t)
	require.NoError(t, d.LoadCreators(context.Background(), services.CreatorFilters{}))

	card, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, CardCreator, card.Kind)
	require.NotNil(t, card.Creator)

	require.NoError(t, d.Accept(context.Background()))
	assert.Equal(t, []string{card.Creator.ID}, d.Shortlisted())

	// Creator decks never touch the campaign application list.
	assert.Empty(t, session.AppliedCampaigns())
	assert.NotEmpty(t, session.CreatorProfiles())
}

func TestDeck_ShortlistIdempotentAcrossReloads(t *testing.T) {
	d, _ := newTestDeck(t)

	require.NoError(t, d.LoadCreators(context.Background(), services.CreatorFilters{}))
	first, ok := d.Current()
	require.True(t, ok)
	require.NoError(t, d.Accept(context.Background()))

	// Reload presents the same fixture deck; re-accepting the same creator
	// must not duplicate the shortlist entry.
	require.NoError(t, d.LoadCreators(context.Background(), services.CreatorFilters{}))
	again, ok := d.Current()
	require.True(t, ok)
	require.Equal(t, first.Creator.ID, again.Creator.ID)
	require.NoError(t, d.Accept(context.Background()))

	assert.Equal(t, []string{first.Creator.ID}, d.Shortlisted())
}

func TestDeck_EmptyLoadGoesStraightToExhausted(t *testing.T) {
	d, _ := newTestDeck(t)

	err := d.LoadCreators(context.Background(), services.CreatorFilters{Category: "Opera"})
	require.NoError(t, err)

	assert.Equal(t, StateExhausted, d.State())
}
