package ports

// Randomizer abstracts the simulation RNG so tests can supply deterministic
// sequences. Chance(p) succeeds when a uniform roll in [0,100) is below p.
type Randomizer interface {
	Roll(max uint32) uint32
	Chance(percent uint32) bool
}
