package scoring

// Rules holds the distance challenge parameters.
type Rules struct {
	MileageGoal  float64 `toml:"mileage_goal" validate:"gt=0"`
	MileageBonus int     `toml:"mileage_bonus" validate:"gte=0"`
}

var DefaultRules = Rules{
	MileageGoal:  100,
	MileageBonus: 10,
}
