package filter

import "testing"

func TestPriceRangeMatches(t *testing.T) {
	tests := []struct {
		name   string
		r      PriceRange
		cost   float64
		isFree bool
		want   bool
	}{
		{name: "all matches priced", r: PriceAll, cost: 25, want: true},
		{name: "all matches zero", r: PriceAll, cost: 0, want: true},

		{name: "free matches free", r: PriceFree, cost: 0, isFree: true, want: true},
		{name: "free rejects priced", r: PriceFree, cost: 10, want: false},

		{name: "unspecified matches zero non-free", r: PriceUnspecified, cost: 0, want: true},
		{name: "unspecified rejects free", r: PriceUnspecified, cost: 0, isFree: true, want: false},
		{name: "unspecified rejects priced", r: PriceUnspecified, cost: 5, want: false},

		// Upper edges are inclusive.
		{name: "exactly 9 in 0-9", r: Price0To9, cost: 9, want: true},
		{name: "exactly 9 not in 10-19", r: Price10To19, cost: 9, want: false},
		{name: "above 9 in 10-19", r: Price10To19, cost: 9.5, want: true},
		{name: "exactly 19 in 10-19", r: Price10To19, cost: 19, want: true},
		{name: "exactly 29 in 20-29", r: Price20To29, cost: 29, want: true},
		{name: "exactly 39 in 30-39", r: Price30To39, cost: 39, want: true},
		{name: "exactly 39 not in 40+", r: Price40Plus, cost: 39, want: false},
		{name: "above 39 in 40+", r: Price40Plus, cost: 40, want: true},

		{name: "zero not in 0-9", r: Price0To9, cost: 0, want: false},
		{name: "unknown bucket matches all", r: PriceRange("bogus"), cost: 7, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Matches(tt.cost, tt.isFree); got != tt.want {
				t.Errorf("%s.Matches(%v, %v) = %v, want %v", tt.r, tt.cost, tt.isFree, got, tt.want)
			}
		})
	}
}

func TestPriceRangeLabel(t *testing.T) {
	tests := []struct {
		r    PriceRange
		want string
	}{
		{r: PriceAll, want: "Все цены"},
		{r: PriceFree, want: "Бесплатно"},
		{r: PriceUnspecified, want: "Не указано"},
		{r: Price0To9, want: "До 9 р"},
		{r: Price10To19, want: "10-19 р"},
		{r: Price20To29, want: "20-29 р"},
		{r: Price30To39, want: "30-39 р"},
		{r: Price40Plus, want: "Более 40 р"},
		{r: PriceRange("bogus"), want: "Все цены"},
	}

	for _, tt := range tests {
		if got := tt.r.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestPriceRangeValid(t *testing.T) {
	for _, r := range PriceRanges {
		if !r.Valid() {
			t.Errorf("%s.Valid() = false, want true", r)
		}
	}
	if PriceRange("9000+").Valid() {
		t.Error(`PriceRange("9000+").Valid() = true, want false`)
	}
}
