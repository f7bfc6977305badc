package recommend

import "github.com/Rambadrinathan/vatika-studio/catalog"

// plantCycles assigns an ordered rotation of companion species per planter
// size, chosen so adjacent same-size planters get visually distinct plants.
var plantCycles = map[catalog.PlanterSize][]string{
	catalog.SizeBig:    {"areca-palm", "rubber-plant", "bougainvillea"},
	catalog.SizeMedium: {"snake-plant", "peace-lily", "fern-boston", "croton", "rubber-plant"},
	catalog.SizeSmall:  {"golden-pothos", "money-plant", "jade-plant", "spider-plant"},
}

// plantCycler is a round-robin plant selector with one cursor per size class.
// A fresh cycler is built for every Recommend call; sharing one across calls
// would make recommendations order-dependent.
type plantCycler struct {
	cursors map[catalog.PlanterSize]int
}

func newPlantCycler() *plantCycler {
	return &plantCycler{cursors: map[catalog.PlanterSize]int{
		catalog.SizeBig:    0,
		catalog.SizeMedium: 0,
		catalog.SizeSmall:  0,
	}}
}

// next returns the next plant in the size class rotation and advances it.
func (c *plantCycler) next(size catalog.PlanterSize) catalog.Plant {
	cycle := plantCycles[size]
	id := cycle[c.cursors[size]%len(cycle)]
	c.cursors[size]++
	plant, _ := catalog.PlantByID(id)
	return plant
}
