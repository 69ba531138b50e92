package scoring

type Tier struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Podium tiers, lowest first. Display only, they never change a total.
var Tiers = []Tier{
	{Name: "Bronze", Points: 50},
	{Name: "Silver", Points: 75},
	{Name: "Gold", Points: 100},
}

// PodiumFor returns the highest tier reached with points.
func PodiumFor(points int) (Tier, bool) {
	for i := len(Tiers) - 1; i >= 0; i-- {
		if points >= Tiers[i].Points {
			return Tiers[i], true
		}
	}
	return Tier{}, false
}

type TierProgress struct {
	Next      Tier    `json:"next"`
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// NextTier reports how far points are from the next tier; false once Gold.
func NextTier(points int) (TierProgress, bool) {
	for _, t := range Tiers {
		if points < t.Points {
			return TierProgress{
				Next:      t,
				Remaining: t.Points - points,
				Percent:   max(0, float64(points)/float64(t.Points)*100),
			}, true
		}
	}
	return TierProgress{}, false
}
