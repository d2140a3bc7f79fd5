package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/sct202509kato/cli-card-battle/internal/game/dice"
)

// TestRollResult_Total verifies the postcondition: Total() == sum(Dice).
func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Dice: []int{4, 5}}
	assert.Equal(t, 9, r.Total(), "Total() must equal sum(Dice)")
}

// TestRollResult_String verifies the audit string contains the dice and the total.
func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Dice: []int{4, 5}}
	s := r.String()
	require.Contains(t, s, "[4 5]", "String() must contain the dice results")
	require.Contains(t, s, "9", "String() must contain the total")
	assert.Equal(t, "2d6 → [4 5] = 9", s, "String() must match exact format")
}

// TestRollResult_String_PanicsOnEmptyDice verifies that String() enforces
// its precondition and panics when Dice is empty.
func TestRollResult_String_PanicsOnEmptyDice(t *testing.T) {
	r := dice.RollResult{}
	assert.Panics(t, func() { _ = r.String() })
}

// TestRollResult_Total_Property uses property-based testing to verify the
// postcondition Total() == sum(Dice) for arbitrary inputs.
func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dice_ := rapid.SliceOf(rapid.IntRange(1, 6)).Draw(rt, "dice")

		r := dice.RollResult{Dice: dice_}

		expected := 0
		for _, d := range dice_ {
			expected += d
		}
		assert.Equal(rt, expected, r.Total(),
			"Total() postcondition: must equal sum(Dice)")
	})
}

// TestRollDie_InRange verifies every die result is in [1, 6].
func TestRollDie_InRange(t *testing.T) {
	src := dice.NewSeededSource(1)
	for i := 0; i < 1000; i++ {
		v := dice.RollDie(src)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

// TestRollDice_CountAndRange verifies len(Dice) == n and every die is in [1, 6].
func TestRollDice_CountAndRange(t *testing.T) {
	src := dice.NewSeededSource(7)
	for n := 1; n <= 4; n++ {
		r := dice.RollDice(src, n)
		require.Len(t, r.Dice, n, "RollDice(%d) must produce %d dice", n, n)
		for _, d := range r.Dice {
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 6)
		}
	}
}

// TestRollDice_PanicsOnZero verifies the precondition n >= 1.
func TestRollDice_PanicsOnZero(t *testing.T) {
	src := dice.NewSeededSource(1)
	assert.Panics(t, func() { dice.RollDice(src, 0) })
}

// TestSeededSource_Deterministic verifies the same seed replays the same stream.
func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 200; i++ {
		require.Equal(t, a.Intn(6), b.Intn(6), "streams diverged at draw %d", i)
	}
}

// TestSeededSource_DifferentSeedsDiverge verifies distinct seeds produce
// distinct streams (with overwhelming probability over 100 draws).
func TestSeededSource_DifferentSeedsDiverge(t *testing.T) {
	a := dice.NewSeededSource(1)
	b := dice.NewSeededSource(2)
	same := true
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds must not replay the same stream")
}

// TestSeededSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewSeededSource(1)
	assert.Panics(t, func() { src.Intn(0) })
}

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

// TestShuffle_Deterministic verifies Shuffle is a pure function of the seed
// and input order.
func TestShuffle_Deterministic(t *testing.T) {
	mk := func() []int {
		items := make([]int, 10)
		for i := range items {
			items[i] = i
		}
		return items
	}
	a, b := mk(), mk()
	dice.Shuffle(dice.NewSeededSource(99), a)
	dice.Shuffle(dice.NewSeededSource(99), b)
	assert.Equal(t, a, b, "same seed must produce same permutation")
}

// TestShuffle_Property_IsPermutation verifies Shuffle never loses or duplicates
// elements for arbitrary inputs and seeds.
func TestShuffle_Property_IsPermutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOf(rapid.IntRange(0, 100)).Draw(rt, "items")
		seed := rapid.Int64().Draw(rt, "seed")

		counts := map[int]int{}
		for _, v := range items {
			counts[v]++
		}

		shuffled := make([]int, len(items))
		copy(shuffled, items)
		dice.Shuffle(dice.NewSeededSource(seed), shuffled)

		got := map[int]int{}
		for _, v := range shuffled {
			got[v]++
		}
		assert.Equal(rt, counts, got, "Shuffle must produce a permutation")
	})
}

// TestNewSeed verifies crypto seed generation does not error and varies.
func TestNewSeed(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		s, err := dice.NewSeed()
		require.NoError(t, err)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1, "NewSeed must not return a constant")
}

// TestLoggedRoller_Roll verifies the roller delegates to its source and keeps
// the roll count.
func TestLoggedRoller_Roll(t *testing.T) {
	roller := dice.NewLoggedRoller(dice.NewSeededSource(5), zap.NewNop())
	r := roller.Roll(2)
	require.Len(t, r.Dice, 2)

	// Same seed through a bare source must match the roller's stream.
	src := dice.NewSeededSource(5)
	want := dice.RollDice(src, 2)
	assert.Equal(t, fmt.Sprint(want.Dice), fmt.Sprint(r.Dice))
}

// TestRollDice_ThroughRoller_Logs verifies RollDice routes rolls to a Roller
// standing in as the Source, so the roll is logged like a direct Roll.
func TestRollDice_ThroughRoller_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewLoggedRoller(dice.NewSeededSource(3), zap.New(core))

	r := dice.RollDice(roller, 2)
	require.Len(t, r.Dice, 2)
	roller.Roll(1)

	assert.Equal(t, 2, logs.FilterMessage("dice roll").Len(),
		"RollDice through a Roller must log the roll")
}

// TestRoller_Intn_NotLogged verifies single draws pass through unlogged; only
// whole rolls produce log entries.
func TestRoller_Intn_NotLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewLoggedRoller(dice.NewSeededSource(3), zap.New(core))

	roller.Intn(6)
	assert.Equal(t, 0, logs.Len())
}

// TestLoggedRoller_Intn verifies the roller satisfies Source.
func TestLoggedRoller_Intn(t *testing.T) {
	var _ dice.Source = dice.NewLoggedRoller(dice.NewSeededSource(1), zap.NewNop())
	roller := dice.NewLoggedRoller(dice.NewSeededSource(1), zap.NewNop())
	v := roller.Intn(6)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 6)
}
