package matching

import (
	"github.com/thong1990/t3turbo-sub000/trading/database/models"
)

// Scoring constants are a ranking heuristic, not a product invariant.
const (
	cardPairWeight = 10
	balanceBonus   = 5
	balanceSlack   = 1
)

// Score ranks a candidate exchange. More matched cards score higher, with a
// flat bonus when both sides contribute a similar number of cards. Pure and
// deterministic; ties are broken by discovery order.
func Score(cardsIWant, cardsIGive []*models.Card) int {
	n := len(cardsIWant)
	if len(cardsIGive) < n {
		n = len(cardsIGive)
	}
	score := cardPairWeight * n

	diff := len(cardsIWant) - len(cardsIGive)
	if diff < 0 {
		diff = -diff
	}
	if diff <= balanceSlack {
		score += balanceBonus
	}
	return score
}
