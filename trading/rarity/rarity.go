// Package rarity defines which card rarity tiers are eligible for trading and
// how they are presented.
package rarity

// Tier codes as stored in the card catalog, lowest first. Everything above
// the single star tier (two-star, crown, promo) is excluded from trading.
const (
	Diamond1 = "d1"
	Diamond2 = "d2"
	Diamond3 = "d3"
	Diamond4 = "d4"
	Star1    = "s1"
)

var tradeableTiers = []string{Diamond1, Diamond2, Diamond3, Diamond4, Star1}

var displayNames = map[string]string{
	Diamond1: "◊",
	Diamond2: "◊◊",
	Diamond3: "◊◊◊",
	Diamond4: "◊◊◊◊",
	Star1:    "☆",
}

// IsTradeable reports whether cards of the given tier may enter matching.
func IsTradeable(tier string) bool {
	for _, t := range tradeableTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Tiers returns the tradeable tiers in ascending order. The fixed order keeps
// proposal generation deterministic.
func Tiers() []string {
	out := make([]string, len(tradeableTiers))
	copy(out, tradeableTiers)
	return out
}

// DisplayName maps a tier code to its user-facing symbol. Unknown codes come
// back unchanged.
func DisplayName(tier string) string {
	if name, ok := displayNames[tier]; ok {
		return name
	}
	return tier
}
