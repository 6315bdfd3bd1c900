package skips

import "github.com/Veraticus/skiphire/internal/model"

// Fixture produces a fresh set of options.
type Fixture func() []model.SkipOption

// FixtureLowestoft is the range offered in NR32: seven road-legal sizes and
// two large skips that need a permit and, for the 40 yard, no heavy waste.
var FixtureLowestoft Fixture = func() []model.SkipOption {
	big := Option(17940, 20, "992")
	big.AllowedOnRoad = false

	biggest := Option(17941, 40, "992")
	biggest.AllowedOnRoad = false
	biggest.AllowsHeavyWaste = false

	return []model.SkipOption{
		Option(17933, 4, "278"),
		Option(17934, 6, "305"),
		Option(17935, 8, "375"),
		Option(17936, 10, "400"),
		Option(17937, 12, "439"),
		Option(17938, 14, "470"),
		Option(17939, 16, "496"),
		big,
		biggest,
	}
}

// FixtureSingle is one 4 yard skip at £100 + 20% VAT.
var FixtureSingle Fixture = func() []model.SkipOption {
	return []model.SkipOption{Option(1, 4, "100")}
}
