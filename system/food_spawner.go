package system

import (
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"golang.org/x/exp/rand"
)

// FoodSpawner places food on free cells
// Not safe for concurrent use; owned by the engine
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner; seed 0 seeds from the clock
func NewFoodSpawner(seed uint64) *FoodSpawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn picks a uniformly random cell in [0,width) x [0,height) for which occupied is false,
// and draws Bonus with probability bonusChance, Normal otherwise
// Random sampling is bounded by width*height*SpawnAttemptFactor attempts, then a row-major scan
// takes the first free cell. ok is false only when every cell is occupied
func (fs *FoodSpawner) Spawn(width, height int, occupied func(core.Cell) bool, bonusChance float64) (component.Food, bool) {
	if width <= 0 || height <= 0 {
		return component.Food{}, false
	}

	kind := component.FoodNormal
	if fs.rng.Float64() < bonusChance {
		kind = component.FoodBonus
	}

	attempts := width * height * parameter.SpawnAttemptFactor
	for i := 0; i < attempts; i++ {
		c := core.Cell{X: fs.rng.Intn(width), Y: fs.rng.Intn(height)}
		if !occupied(c) {
			return component.NewFood(c, kind), true
		}
	}

	// Nearly full board, sampling is hopeless
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := core.Cell{X: x, Y: y}
			if !occupied(c) {
				return component.NewFood(c, kind), true
			}
		}
	}
	return component.Food{}, false
}
