package level

// Tier selects the size class of a generated level.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

// TierSpec is the fixed parameter tuple a tier maps to.
type TierSpec struct {
	GridWidth  int
	GridHeight int
	Enemies    int
	Sprites    int
	Rooms      int
}

var tierSpecs = map[Tier]TierSpec{
	TierSmall:  {GridWidth: 21, GridHeight: 21, Enemies: 20, Sprites: 15, Rooms: 4},
	TierMedium: {GridWidth: 29, GridHeight: 29, Enemies: 35, Sprites: 20, Rooms: 6},
	TierLarge:  {GridWidth: 35, GridHeight: 35, Enemies: 50, Sprites: 25, Rooms: 8},
}

// Spec returns the parameter tuple for the tier. Unknown tiers fall back to
// small.
func (t Tier) Spec() TierSpec {
	if s, ok := tierSpecs[t]; ok {
		return s
	}
	return tierSpecs[TierSmall]
}

// Next returns the tier after t, or t itself if already the largest.
func (t Tier) Next() (Tier, bool) {
	switch t {
	case TierSmall:
		return TierMedium, true
	case TierMedium:
		return TierLarge, true
	default:
		return t, false
	}
}

// String implements fmt.Stringer for log output.
func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}
