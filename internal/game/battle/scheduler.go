package battle

import (
	"sort"

	"github.com/sct202509kato/cli-card-battle/internal/game/dice"
)

// Turn binds an actor to its side for one scheduled slot. Ownership is carried
// explicitly so resolution never has to test party membership.
type Turn struct {
	Actor   *Character
	Allies  *Party
	Enemies *Party
}

// TickCooldowns decrements every character's AOE cooldown by 1, flooring at 0.
// Runs at the start of every round, before transient-effect reset.
//
// Postcondition: every character's Cooldowns.AoeAttack >= 0 and is reduced by
// at most 1.
func TickCooldowns(a, b *Party) {
	for _, p := range []*Party{a, b} {
		for _, c := range p.Members {
			if c.Cooldowns.AoeAttack > 0 {
				c.Cooldowns.AoeAttack--
			}
		}
	}
}

// ResetTransientEffects clears the per-round effects on every character:
// Defending and AtkBuff. AtkDebuff is deliberately left alone; it persists
// until consumed by the next effective-attack computation.
//
// Postcondition: every character has Defending == false and AtkBuff == 0;
// AtkDebuff values are unchanged.
func ResetTransientEffects(a, b *Party) {
	for _, p := range []*Party{a, b} {
		for _, c := range p.Members {
			c.Effects.Defending = false
			c.Effects.AtkBuff = 0
		}
	}
}

// BuildTurnOrder collects the living characters of both parties, shuffles them
// with src to break speed ties reproducibly, then stable-sorts descending by
// Spd. The order is fixed for the whole round; actors that die mid-round are
// skipped when their slot comes up, not removed.
//
// Precondition: src must be non-nil.
// Postcondition: returned turns are sorted by Actor.Stats.Spd descending and
// contain exactly the characters that were alive at round start.
func BuildTurnOrder(a, b *Party, src dice.Source) []Turn {
	var turns []Turn
	for _, c := range a.Living() {
		turns = append(turns, Turn{Actor: c, Allies: a, Enemies: b})
	}
	for _, c := range b.Living() {
		turns = append(turns, Turn{Actor: c, Allies: b, Enemies: a})
	}

	dice.Shuffle(src, turns)
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].Actor.Stats.Spd > turns[j].Actor.Stats.Spd
	})
	return turns
}
