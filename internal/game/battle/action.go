package battle

// ActionType identifies what a combatant does on their turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown       ActionType = iota // zero value; intentionally invalid
	ActionAttack                          // single-target attack, 2d6
	ActionHeal                            // heal the most damaged ally, 1d6 x VIT
	ActionDefend                          // incoming damage x0.6 until next round start
	ActionSupportAttack                   // 1d6 attack that applies ATK -2 on the target
	ActionAoeAttack                       // 1d6 x0.8 attack on every living enemy, 3-round cooldown
)

// String returns the human-readable name of the ActionType.
//
// Postcondition: returns one of "attack", "heal", "defend", "support-attack",
// "aoe-attack", or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionHeal:
		return "heal"
	case ActionDefend:
		return "defend"
	case ActionSupportAttack:
		return "support-attack"
	case ActionAoeAttack:
		return "aoe-attack"
	default:
		return "unknown"
	}
}

// AoeCooldownRounds is the cooldown set on an attacker after an AOE attack.
const AoeCooldownRounds = 3

const (
	// defendFactor scales damage taken while defending.
	defendFactor = 0.6
	// aoeFactor scales the shared AOE raw damage below a single-target hit.
	aoeFactor = 0.8
	// aoeLowHPThreshold is the absolute HP at or below which an enemy makes
	// the attacker consider an AOE attack.
	aoeLowHPThreshold = 50
	// aoeMinEnemies is the minimum living enemy count for an AOE attack.
	aoeMinEnemies = 3
	// healThreshold is the HP ratio below which (strictly) a healer heals.
	healThreshold = 0.70
)

// PhaseMultiplier returns the offensive damage scale for the given round
// number: 1.4 from round 15, 1.2 from round 10, 1.0 before that. Healing is
// never scaled.
//
// Precondition: round >= 1.
func PhaseMultiplier(round int) float64 {
	switch {
	case round >= 15:
		return 1.4
	case round >= 10:
		return 1.2
	default:
		return 1.0
	}
}
