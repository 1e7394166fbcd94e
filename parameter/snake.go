package parameter

// Grid and snake defaults, overridable through config
const (
	DefaultGridWidth     = 20
	DefaultGridHeight    = 20
	DefaultInitialLength = 3

	// DefaultBonusChance is the probability that a spawned food is bonus
	DefaultBonusChance = 0.15

	// MinGridSize is the smallest accepted width or height
	MinGridSize = 4

	// MaxGridSize bounds width and height so the board fits a terminal
	MaxGridSize = 512
)

// Food points per kind
const (
	NormalFoodPoints = 10
	BonusFoodPoints  = 50
)

// SpawnAttemptFactor scales width*height into the random sampling budget
// before the spawner falls back to a linear scan
const SpawnAttemptFactor = 4
