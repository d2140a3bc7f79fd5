package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sct202509kato/cli-card-battle/internal/game/battle"
	"github.com/sct202509kato/cli-card-battle/internal/game/dice"
)

func twoParties() (*battle.Party, *battle.Party) {
	a := &battle.Party{Name: "A", Members: []*battle.Character{
		newChar("a1", battle.RoleAttacker, 100, 100),
		newChar("a2", battle.RoleHealer, 100, 100),
	}}
	b := &battle.Party{Name: "B", Members: []*battle.Character{
		newChar("b1", battle.RoleSupporter, 100, 100),
		newChar("b2", battle.RoleTank, 100, 100),
	}}
	return a, b
}

func TestTickCooldowns(t *testing.T) {
	a, b := twoParties()
	a.Members[0].Cooldowns.AoeAttack = 3
	b.Members[1].Cooldowns.AoeAttack = 1

	battle.TickCooldowns(a, b)
	assert.Equal(t, 2, a.Members[0].Cooldowns.AoeAttack)
	assert.Equal(t, 0, b.Members[1].Cooldowns.AoeAttack)

	battle.TickCooldowns(a, b)
	battle.TickCooldowns(a, b)
	battle.TickCooldowns(a, b)
	assert.Equal(t, 0, a.Members[0].Cooldowns.AoeAttack, "cooldown floors at 0")
	assert.Equal(t, 0, b.Members[1].Cooldowns.AoeAttack)
}

// TestTickCooldowns_Property: one tick reduces each cooldown by at most 1 and
// never drives it negative.
func TestTickCooldowns_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a, b := twoParties()
		before := make([]int, 0, 4)
		for _, p := range []*battle.Party{a, b} {
			for _, c := range p.Members {
				c.Cooldowns.AoeAttack = rapid.IntRange(0, 5).Draw(rt, "cd")
				before = append(before, c.Cooldowns.AoeAttack)
			}
		}

		battle.TickCooldowns(a, b)

		i := 0
		for _, p := range []*battle.Party{a, b} {
			for _, c := range p.Members {
				after := c.Cooldowns.AoeAttack
				require.GreaterOrEqual(rt, after, 0)
				require.GreaterOrEqual(rt, after, before[i]-1)
				require.LessOrEqual(rt, after, before[i])
				i++
			}
		}
	})
}

func TestResetTransientEffects(t *testing.T) {
	a, b := twoParties()
	a.Members[0].Effects.Defending = true
	a.Members[0].Effects.AtkBuff = 3
	a.Members[0].Effects.AtkDebuff = -2
	b.Members[1].Effects.Defending = true

	battle.ResetTransientEffects(a, b)

	assert.False(t, a.Members[0].Effects.Defending)
	assert.Equal(t, 0, a.Members[0].Effects.AtkBuff)
	assert.Equal(t, -2, a.Members[0].Effects.AtkDebuff,
		"AtkDebuff persists across round boundaries")
	assert.False(t, b.Members[1].Effects.Defending)
}

func TestBuildTurnOrder_SortedBySpeedDesc(t *testing.T) {
	a, b := twoParties()
	a.Members[0].Stats.Spd = 6
	a.Members[1].Stats.Spd = 5
	b.Members[0].Stats.Spd = 6
	b.Members[1].Stats.Spd = 4

	turns := battle.BuildTurnOrder(a, b, dice.NewSeededSource(1))
	require.Len(t, turns, 4)
	for i := 1; i < len(turns); i++ {
		assert.GreaterOrEqual(t, turns[i-1].Actor.Stats.Spd, turns[i].Actor.Stats.Spd,
			"turn order must be non-increasing in speed")
	}
}

func TestBuildTurnOrder_ExcludesDead(t *testing.T) {
	a, b := twoParties()
	a.Members[1].Stats.HP = 0

	turns := battle.BuildTurnOrder(a, b, dice.NewSeededSource(1))
	require.Len(t, turns, 3)
	for _, turn := range turns {
		assert.True(t, turn.Actor.Alive())
		assert.NotEqual(t, "a2", turn.Actor.Name)
	}
}

func TestBuildTurnOrder_CarriesOwnership(t *testing.T) {
	a, b := twoParties()
	turns := battle.BuildTurnOrder(a, b, dice.NewSeededSource(1))
	for _, turn := range turns {
		found := false
		for _, m := range turn.Allies.Members {
			if m == turn.Actor {
				found = true
			}
		}
		require.True(t, found, "actor %s must belong to its Allies party", turn.Actor.Name)
		assert.NotEqual(t, turn.Allies, turn.Enemies)
	}
}

// TestBuildTurnOrder_DeterministicTieBreak: with equal speeds the shuffle
// decides the order, and the same seed must decide it the same way.
func TestBuildTurnOrder_DeterministicTieBreak(t *testing.T) {
	names := func(turns []battle.Turn) []string {
		out := make([]string, len(turns))
		for i, turn := range turns {
			out[i] = turn.Actor.Name
		}
		return out
	}

	a1, b1 := twoParties()
	a2, b2 := twoParties()
	first := battle.BuildTurnOrder(a1, b1, dice.NewSeededSource(42))
	second := battle.BuildTurnOrder(a2, b2, dice.NewSeededSource(42))
	assert.Equal(t, names(first), names(second),
		"same seed and rosters must produce the same order")
}
