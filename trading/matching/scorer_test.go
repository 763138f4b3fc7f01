package matching

import (
	"testing"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
)

func cards(n int) []*models.Card {
	out := make([]*models.Card, n)
	for i := range out {
		out[i] = &models.Card{ID: int64(i + 1)}
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		want int
		give int
		exp  int
	}{
		{name: "one for one", want: 1, give: 1, exp: 15},
		{name: "balanced pair", want: 2, give: 2, exp: 25},
		{name: "off by one keeps bonus", want: 2, give: 3, exp: 25},
		{name: "unbalanced loses bonus", want: 1, give: 3, exp: 10},
		{name: "empty give", want: 3, give: 0, exp: 0},
		{name: "empty both", want: 0, give: 0, exp: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(cards(tt.want), cards(tt.give)); got != tt.exp {
				t.Errorf("Score(%d want, %d give) = %d, want %d", tt.want, tt.give, got, tt.exp)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	want := cards(3)
	give := cards(2)
	first := Score(want, give)
	for i := 0; i < 10; i++ {
		if got := Score(want, give); got != first {
			t.Fatalf("Score not deterministic: got %d then %d", first, got)
		}
	}
}

func TestScore_BalancedBeatsUnbalanced(t *testing.T) {
	// Same max side, balanced counterpart scores at least as high.
	balanced := Score(cards(2), cards(2))
	unbalanced := Score(cards(2), cards(5))
	if balanced < unbalanced {
		t.Errorf("balanced score %d < unbalanced score %d", balanced, unbalanced)
	}
}
