package filter

// PriceRange is one named cost bucket. Numeric buckets are half-open
// intervals on the parsed cost, inclusive on their upper edge: an event
// costing exactly 9 is in "0-9", not "10-19".
type PriceRange string

const (
	PriceAll         PriceRange = "all"
	PriceFree        PriceRange = "free"
	PriceUnspecified PriceRange = "unspecified"
	Price0To9        PriceRange = "0-9"
	Price10To19      PriceRange = "10-19"
	Price20To29      PriceRange = "20-29"
	Price30To39      PriceRange = "30-39"
	Price40Plus      PriceRange = "40+"
)

// PriceRanges lists every bucket in display order.
var PriceRanges = []PriceRange{
	PriceAll, PriceFree, PriceUnspecified,
	Price0To9, Price10To19, Price20To29, Price30To39, Price40Plus,
}

// Valid reports whether r names a known bucket.
func (r PriceRange) Valid() bool {
	for _, known := range PriceRanges {
		if r == known {
			return true
		}
	}
	return false
}

// Matches checks bucket membership for a parsed cost. The free marker is
// consulted before the numeric buckets, so a free event with no number in
// its cost text never lands in "unspecified". An unknown bucket matches
// everything, same as "all".
func (r PriceRange) Matches(cost float64, isFree bool) bool {
	switch r {
	case PriceAll:
		return true
	case PriceFree:
		return isFree
	case PriceUnspecified:
		return cost == 0 && !isFree
	case Price0To9:
		return cost > 0 && cost <= 9
	case Price10To19:
		return cost > 9 && cost <= 19
	case Price20To29:
		return cost > 19 && cost <= 29
	case Price30To39:
		return cost > 29 && cost <= 39
	case Price40Plus:
		return cost > 39
	default:
		return true
	}
}

// Label returns the localized display label for the bucket.
func (r PriceRange) Label() string {
	switch r {
	case PriceFree:
		return "Бесплатно"
	case PriceUnspecified:
		return "Не указано"
	case Price0To9:
		return "До 9 р"
	case Price10To19:
		return "10-19 р"
	case Price20To29:
		return "20-29 р"
	case Price30To39:
		return "30-39 р"
	case Price40Plus:
		return "Более 40 р"
	default:
		return "Все цены"
	}
}
