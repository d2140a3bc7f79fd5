package battle

import (
	"github.com/sct202509kato/cli-card-battle/internal/game/dice"
)

// supportAtkDebuff is the attack debuff a support attack puts on its target.
const supportAtkDebuff = -2

// TargetResult records the effect of one resolution on one target.
type TargetResult struct {
	Name      string
	Defending bool // target was defending when the damage landed
	Raw       int  // raw damage before the defend reduction; heal amount rolled
	Actual    int  // damage actually dealt, or HP actually restored
	HPAfter   int
}

// Record is the structured account of one resolved action. Presentation
// layers format battle logs from Records alone, without recomputing state.
type Record struct {
	Round      int
	Actor      string
	Role       Role
	Action     ActionType
	Dice       []int   // die values rolled; empty for defend
	Multiplier float64 // phase multiplier applied; 1.0 where none applies
	Targets    []TargetResult
	// AoeCooldown is the actor's remaining AOE cooldown after this action.
	// Only meaningful for attackers.
	AoeCooldown int
}

// ResolveAttack performs a single-target attack: 2d6 x effective attack x
// phase multiplier, truncated.
//
// Precondition: actor and target non-nil; src non-nil; round >= 1.
// Postcondition: returns nil with no state change if actor or target is dead;
// otherwise damage is applied and a populated Record returned.
func ResolveAttack(actor, target *Character, round int, src dice.Source) *Record {
	if !actor.Alive() || !target.Alive() {
		return nil
	}

	roll := dice.RollDice(src, 2)
	atk := actor.EffectiveAttack()
	mult := PhaseMultiplier(round)
	raw := int(float64(roll.Total()*atk) * mult)

	defending := target.Effects.Defending
	dmg := target.ApplyDamage(raw)

	return &Record{
		Round:      round,
		Actor:      actor.Name,
		Role:       actor.Role,
		Action:     ActionAttack,
		Dice:       roll.Dice,
		Multiplier: mult,
		Targets: []TargetResult{{
			Name:      target.Name,
			Defending: defending,
			Raw:       raw,
			Actual:    dmg,
			HPAfter:   target.Stats.HP,
		}},
		AoeCooldown: actor.Cooldowns.AoeAttack,
	}
}

// ResolveAoeAttack hits every living enemy with the same shared raw damage:
// 1d6 x effective attack x phase multiplier x 0.8, truncated once, with the
// defend reduction applied per target. The actor's AOE cooldown is set to
// AoeCooldownRounds after the hits resolve.
//
// Precondition: actor and enemies non-nil; src non-nil; round >= 1.
// Postcondition: returns nil with no state change (cooldown included) if the
// actor is dead or no enemy lives; otherwise Cooldowns.AoeAttack ==
// AoeCooldownRounds and the Record carries one TargetResult per enemy hit.
func ResolveAoeAttack(actor *Character, enemies *Party, round int, src dice.Source) *Record {
	if !actor.Alive() {
		return nil
	}
	targets := enemies.Living()
	if len(targets) == 0 {
		return nil
	}

	roll := dice.RollDice(src, 1)
	atk := actor.EffectiveAttack()
	mult := PhaseMultiplier(round)
	raw := int(float64(roll.Total()*atk) * mult * aoeFactor)

	results := make([]TargetResult, 0, len(targets))
	for _, t := range targets {
		defending := t.Effects.Defending
		dmg := t.ApplyDamage(raw)
		results = append(results, TargetResult{
			Name:      t.Name,
			Defending: defending,
			Raw:       raw,
			Actual:    dmg,
			HPAfter:   t.Stats.HP,
		})
	}

	actor.Cooldowns.AoeAttack = AoeCooldownRounds

	return &Record{
		Round:       round,
		Actor:       actor.Name,
		Role:        actor.Role,
		Action:      ActionAoeAttack,
		Dice:        roll.Dice,
		Multiplier:  mult,
		Targets:     results,
		AoeCooldown: actor.Cooldowns.AoeAttack,
	}
}

// ResolveSupportAttack performs a 1d6 attack and then unconditionally sets the
// target's attack debuff to supportAtkDebuff, overwriting any prior value. The
// debuff is consumed by the target's next effective-attack computation.
//
// Precondition: actor and target non-nil; src non-nil; round >= 1.
// Postcondition: returns nil with no state change if actor or target is dead;
// otherwise target.Effects.AtkDebuff == supportAtkDebuff.
func ResolveSupportAttack(actor, target *Character, round int, src dice.Source) *Record {
	if !actor.Alive() || !target.Alive() {
		return nil
	}

	roll := dice.RollDice(src, 1)
	atk := actor.EffectiveAttack()
	mult := PhaseMultiplier(round)
	raw := int(float64(roll.Total()*atk) * mult)

	defending := target.Effects.Defending
	dmg := target.ApplyDamage(raw)
	target.Effects.AtkDebuff = supportAtkDebuff

	return &Record{
		Round:      round,
		Actor:      actor.Name,
		Role:       actor.Role,
		Action:     ActionSupportAttack,
		Dice:       roll.Dice,
		Multiplier: mult,
		Targets: []TargetResult{{
			Name:      target.Name,
			Defending: defending,
			Raw:       raw,
			Actual:    dmg,
			HPAfter:   target.Stats.HP,
		}},
		AoeCooldown: actor.Cooldowns.AoeAttack,
	}
}

// ResolveHeal restores 1d6 x the healer's VIT to the target, clamped at
// MaxHP. Healing is never scaled by the phase multiplier.
//
// Precondition: actor and target non-nil; src non-nil; round >= 1.
// Postcondition: returns nil with no state change if actor or target is dead;
// otherwise the Record's single TargetResult carries the rolled amount in Raw
// and the post-clamp restoration in Actual.
func ResolveHeal(actor, target *Character, round int, src dice.Source) *Record {
	if !actor.Alive() || !target.Alive() {
		return nil
	}

	roll := dice.RollDice(src, 1)
	amount := roll.Total() * actor.Stats.Vit
	actual := target.ApplyHeal(amount)

	return &Record{
		Round:      round,
		Actor:      actor.Name,
		Role:       actor.Role,
		Action:     ActionHeal,
		Dice:       roll.Dice,
		Multiplier: 1.0,
		Targets: []TargetResult{{
			Name:    target.Name,
			Raw:     amount,
			Actual:  actual,
			HPAfter: target.Stats.HP,
		}},
		AoeCooldown: actor.Cooldowns.AoeAttack,
	}
}

// ResolveDefend marks the actor as defending until the next round's transient
// reset; damage it takes in the meantime is reduced to floor(raw*0.6).
//
// Precondition: actor non-nil; round >= 1.
// Postcondition: returns nil if the actor is dead; otherwise
// actor.Effects.Defending == true.
func ResolveDefend(actor *Character, round int) *Record {
	if !actor.Alive() {
		return nil
	}
	actor.Effects.Defending = true
	return &Record{
		Round:       round,
		Actor:       actor.Name,
		Role:        actor.Role,
		Action:      ActionDefend,
		Multiplier:  1.0,
		AoeCooldown: actor.Cooldowns.AoeAttack,
	}
}

// Resolve dispatches a Decision to the matching resolver. Decisions whose
// required target is missing, and unknown actions, resolve to nil with no
// state change.
//
// Precondition: t.Actor, t.Allies, t.Enemies, and src non-nil; round >= 1.
func Resolve(t Turn, d Decision, round int, src dice.Source) *Record {
	switch d.Action {
	case ActionAttack:
		if d.Target == nil {
			return nil
		}
		return ResolveAttack(t.Actor, d.Target, round, src)
	case ActionAoeAttack:
		return ResolveAoeAttack(t.Actor, t.Enemies, round, src)
	case ActionSupportAttack:
		if d.Target == nil {
			return nil
		}
		return ResolveSupportAttack(t.Actor, d.Target, round, src)
	case ActionHeal:
		if d.Target == nil {
			return nil
		}
		return ResolveHeal(t.Actor, d.Target, round, src)
	case ActionDefend:
		return ResolveDefend(t.Actor, round)
	default:
		return nil
	}
}
