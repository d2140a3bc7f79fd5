// Package dice provides the core randomness abstraction and roll-result types
// for the battle engine. Every stochastic decision in a battle flows through a
// single Source so that a seeded battle is exactly reproducible.
package dice

import "fmt"

// Sides is the number of faces on the engine's standard die.
const Sides = 6

// RollResult holds the full audit trail for a single dice roll.
//
// Postcondition: Total() == sum(Dice).
type RollResult struct {
	Dice []int // individual die results
}

// Total returns the sum of all die results.
//
// Postcondition: return value == sum(r.Dice).
func (r RollResult) Total() int {
	total := 0
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6 → [4 5] = 9"
//
// Precondition: r.Dice is non-empty.
func (r RollResult) String() string {
	if len(r.Dice) == 0 {
		panic("dice: RollResult.String() precondition violated: Dice must be non-empty")
	}
	return fmt.Sprintf("%dd%d → %v = %d", len(r.Dice), Sides, r.Dice, r.Total())
}

// Source is the randomness provider for dice rolls and turn-order shuffles.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollDie returns a single uniform die result in [1, Sides].
//
// Precondition: src must be non-nil.
func RollDie(src Source) int {
	return src.Intn(Sides) + 1
}

// batchRoller is implemented by Sources that handle whole rolls themselves.
// *Roller implements it so rolls made through it are logged.
type batchRoller interface {
	Roll(n int) RollResult
}

// RollDice rolls n independent dice and returns the full result. A src that
// implements batchRoller handles the roll itself; this is how rolls reach
// *Roller's logging when it stands in as the Source.
//
// Precondition: n >= 1; src must be non-nil.
// Postcondition: len(result.Dice) == n; every die is in [1, Sides].
func RollDice(src Source, n int) RollResult {
	if n < 1 {
		panic("dice: RollDice called with n < 1")
	}
	if r, ok := src.(batchRoller); ok {
		return r.Roll(n)
	}
	rolled := make([]int, n)
	for i := range rolled {
		rolled[i] = RollDie(src)
	}
	return RollResult{Dice: rolled}
}

// Shuffle permutes items in place using the Fisher-Yates algorithm driven by src.
//
// Precondition: src must be non-nil.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
