package matching

import (
	"github.com/thong1990/t3turbo-sub000/trading/database/models"
)

// TradeProposal is one candidate trade between the caller and a partner,
// limited to a single rarity tier. Proposals are recomputed on every matching
// run and never persisted.
type TradeProposal struct {
	PartnerID          string
	PartnerDisplayName string
	RarityTier         string
	CardsIGive         []*models.Card
	CardsIWant         []*models.Card
	MatchScore         int
}
