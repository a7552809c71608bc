package engagement

import (
	"context"
	"sync"

	"inflo_backend/internal/client/remote"
	"inflo_backend/internal/client/store"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/services"
)

// State of a card deck. The machine only moves forward: once a card is
// decided there is no undo, and Exhausted is terminal until Reload.
type State int

const (
	StateIdle State = iota
	StatePresenting
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePresenting:
		return "presenting"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

type CardKind string

const (
	CardCampaign CardKind = "campaign"
	CardCreator  CardKind = "creator"
)

// Card is a tagged union: exactly one of Campaign or Creator is set,
// matching Kind.
type Card struct {
	Kind     CardKind
	Campaign *models.Campaign
	Creator  *models.CreatorProfile
}

// Deck turns a stream of accept/reject decisions over a linear card list
// into facade calls and store mutations. One card is active at a time, so
// decisions are strictly sequential.
type Deck struct {
	svc     remote.Service
	session *store.Store
	actorID string

	mu          sync.Mutex
	state       State
	index       int
	cards       []Card
	shortlisted []string
}

func NewDeck(svc remote.Service, session *store.Store, actorID string) *Deck {
	return &Deck{
		svc:     svc,
		session: session,
		actorID: actorID,
		state:   StateIdle,
	}
}

// LoadCampaigns fills the deck with the creator-relevant campaign feed and
// moves to Presenting(0), or Exhausted when the feed is empty. It also
// refreshes the session's campaign cache.
func (d *Deck) LoadCampaigns(ctx context.Context, filters services.CampaignFilters) error {
	campaigns, err := d.svc.GetCampaigns(ctx, filters)
	if err != nil {
		return err
	}
	d.session.SetCampaigns(campaigns)

	cards := make([]Card, 0, len(campaigns))
	for i := range campaigns {
		c := campaigns[i]
		cards = append(cards, Card{Kind: CardCampaign, Campaign: &c})
	}
	d.reset(cards)
	return nil
}

// LoadCreators fills the deck with creator profiles for the brand swipe
// view and moves to Presenting(0), or Exhausted when the list is empty.
func (d *Deck) LoadCreators(ctx context.Context, filters services.CreatorFilters) error {
	creators, err := d.svc.GetCreators(ctx, filters)
	if err != nil {
		return err
	}
	d.session.SetCreatorProfiles(creators)

	cards := make([]Card, 0, len(creators))
	for i := range creators {
		c := creators[i]
		cards = append(cards, Card{Kind: CardCreator, Creator: &c})
	}
	d.reset(cards)
	return nil
}

func (d *Deck) reset(cards []Card) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cards = cards
	d.index = 0
	if len(cards) == 0 {
		d.state = StateExhausted
	} else {
		d.state = StatePresenting
	}
}

// State reports the current machine state.
func (d *Deck) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Current returns the active card, or false when the deck is idle or
// exhausted.
func (d *Deck) Current() (Card, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StatePresenting {
		return Card{}, false
	}
	return d.cards[d.index], true
}

// Accept decides the active card positively: a campaign card becomes an
// application, a creator card joins the shortlist. Accepting past the last
// card is a no-op, not an error.
func (d *Deck) Accept(ctx context.Context) error {
	d.mu.Lock()
	if d.state != StatePresenting {
		d.mu.Unlock()
		return nil
	}
	card := d.cards[d.index]
	d.mu.Unlock()

	switch card.Kind {
	case CardCampaign:
		if err := d.svc.ApplyCampaign(ctx, card.Campaign.ID, d.actorID); err != nil {
			return err
		}
		d.session.ApplyToCampaign(card.Campaign.ID, d.actorID)
	case CardCreator:
		d.shortlist(card.Creator.ID)
	}

	d.advance()
	return nil
}

// Reject passes on the active card. Past the last card it is a no-op.
func (d *Deck) Reject(ctx context.Context) error {
	d.mu.Lock()
	if d.state != StatePresenting {
		d.mu.Unlock()
		return nil
	}
	card := d.cards[d.index]
	d.mu.Unlock()

	logger.CtxDebug(ctx, "Card rejected", "kind", string(card.Kind))
	d.advance()
	return nil
}

func (d *Deck) advance() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StatePresenting {
		return
	}
	d.index++
	if d.index >= len(d.cards) {
		d.state = StateExhausted
	}
}

func (d *Deck) shortlist(creatorID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range d.shortlisted {
		if id == creatorID {
			return
		}
	}
	d.shortlisted = append(d.shortlisted, creatorID)
}

// Shortlisted returns the creator IDs the brand accepted, in swipe order.
func (d *Deck) Shortlisted() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.shortlisted...)
}

// Remaining reports how many cards are left, the active one included.
func (d *Deck) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StatePresenting {
		return 0
	}
	return len(d.cards) - d.index
}
