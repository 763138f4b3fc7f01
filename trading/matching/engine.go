package matching

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	"github.com/thong1990/t3turbo-sub000/trading/rarity"
)

// Engine discovers reciprocal trade opportunities between the caller and
// every other user. Each run is a pure function of the repository state; the
// engine holds no mutable state of its own.
type Engine struct {
	repository Repository
}

func NewEngine(repository Repository) *Engine {
	return &Engine{
		repository: repository,
	}
}

// FindMatches returns all same-tier, mutually-beneficial trade proposals for
// userID, sorted descending by match score. Any repository error aborts the
// whole call; a partial proposal list is never returned.
func (e *Engine) FindMatches(ctx context.Context, userID string) ([]*TradeProposal, error) {
	start := time.Now()

	tradeable, err := e.repository.GetTradeableCards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tradeable cards: %w", err)
	}
	wishlist, err := e.repository.GetWishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	myGive := filterTradeableRarity(tradeable)
	myWant := filterTradeableRarity(wishlist)

	// Nothing to offer or nothing wanted means no match can exist. Bail out
	// before issuing the broad cross-user queries.
	if len(myGive) == 0 || len(myWant) == 0 {
		return []*TradeProposal{}, nil
	}

	giveCards := make(map[int64]*models.Card, len(myGive))
	giveIDs := make([]int64, 0, len(myGive))
	for _, entry := range myGive {
		giveCards[entry.CardID] = entry.Card
		giveIDs = append(giveIDs, entry.CardID)
	}
	wantIDs := make([]int64, 0, len(myWant))
	for _, entry := range myWant {
		wantIDs = append(wantIDs, entry.CardID)
	}

	// The two cross-user lookups have no data dependency on each other.
	var wanting []models.CardInterest
	var supplying []models.CardSupply
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wanting, err = e.repository.GetUsersWantingCards(gctx, giveIDs, userID)
		if err != nil {
			return fmt.Errorf("failed to find users wanting cards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		supplying, err = e.repository.GetUsersSupplyingCards(gctx, wantIDs, userID)
		if err != nil {
			return fmt.Errorf("failed to find users supplying cards: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	demand := make(map[string]map[int64]bool)
	for _, row := range wanting {
		if demand[row.UserID] == nil {
			demand[row.UserID] = make(map[int64]bool)
		}
		demand[row.UserID][row.CardID] = true
	}
	supply := make(map[string]map[int64]*models.Card)
	for _, row := range supplying {
		if row.Card == nil {
			continue
		}
		if supply[row.UserID] == nil {
			supply[row.UserID] = make(map[int64]*models.Card)
		}
		supply[row.UserID][row.CardID] = row.Card
	}

	// A partner must appear on both sides; one-directional interest never
	// yields a proposal.
	mutual := make([]string, 0, len(demand))
	for partnerID := range demand {
		if _, ok := supply[partnerID]; ok {
			mutual = append(mutual, partnerID)
		}
	}
	if len(mutual) == 0 {
		return []*TradeProposal{}, nil
	}
	sort.Strings(mutual)

	names, err := e.repository.GetUserNames(ctx, mutual)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve partner names: %w", err)
	}

	proposals := make([]*TradeProposal, 0, len(mutual))
	for _, partnerID := range mutual {
		giveByTier := make(map[string][]*models.Card)
		for _, entry := range myGive {
			if demand[partnerID][entry.CardID] {
				giveByTier[entry.Card.Rarity] = append(giveByTier[entry.Card.Rarity], entry.Card)
			}
		}

		partnerCards := make([]*models.Card, 0, len(supply[partnerID]))
		for _, card := range supply[partnerID] {
			partnerCards = append(partnerCards, card)
		}
		sort.Slice(partnerCards, func(i, j int) bool { return partnerCards[i].ID < partnerCards[j].ID })
		wantByTier := make(map[string][]*models.Card)
		for _, card := range partnerCards {
			wantByTier[card.Rarity] = append(wantByTier[card.Rarity], card)
		}

		// Same-tier only: a tier is offered only when both buckets hold
		// at least one card.
		for _, tier := range rarity.Tiers() {
			give := giveByTier[tier]
			want := wantByTier[tier]
			if len(give) == 0 || len(want) == 0 {
				continue
			}
			proposals = append(proposals, &TradeProposal{
				PartnerID:          partnerID,
				PartnerDisplayName: names[partnerID],
				RarityTier:         tier,
				CardsIGive:         give,
				CardsIWant:         want,
				MatchScore:         Score(want, give),
			})
		}
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].MatchScore > proposals[j].MatchScore
	})

	slog.Debug("Matching run completed",
		slog.String("type", "match"),
		slog.String("user_id", userID),
		slog.Int("partners", len(mutual)),
		slog.Int("proposals", len(proposals)),
		slog.Duration("took", time.Since(start)))

	return proposals, nil
}

func filterTradeableRarity(entries []*models.InventoryEntry) []*models.InventoryEntry {
	out := make([]*models.InventoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Card == nil {
			continue
		}
		if !rarity.IsTradeable(entry.Card.Rarity) {
			continue
		}
		out = append(out, entry)
	}
	return out
}
