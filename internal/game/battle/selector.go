package battle

// Decision is the selector's output: an action and, where the action is
// single-target, its target. AOE attacks and defends carry a nil Target.
type Decision struct {
	Action ActionType
	Target *Character
}

// lowestHPEnemy returns the living enemy with the lowest absolute HP, or nil.
// Ties go to the first found in member order.
func lowestHPEnemy(enemies *Party) *Character {
	var pick *Character
	for _, e := range enemies.Living() {
		if pick == nil || e.Stats.HP < pick.Stats.HP {
			pick = e
		}
	}
	return pick
}

// mostDamagedAlly returns the living ally with the lowest HP/MaxHP ratio, or
// nil. Ties go to the first found in member order.
func mostDamagedAlly(allies *Party) *Character {
	var pick *Character
	for _, a := range allies.Living() {
		if pick == nil || a.HPRatio() < pick.HPRatio() {
			pick = a
		}
	}
	return pick
}

// ChooseAction is the fixed per-role policy. It is a pure decision function:
// living members are re-derived from the parties at call time, never from a
// round-start snapshot, so deaths earlier in the round are respected.
//
// Policies:
//   - Attacker: AOE when >= 3 enemies live, the AOE cooldown is 0, and some
//     living enemy is at or below 50 HP; otherwise attack the lowest-HP enemy.
//   - Healer: heal the most damaged ally when its HP ratio is strictly below
//     0.70; otherwise defend.
//   - Supporter: support-attack the first living enemy attacker, falling back
//     to the lowest-HP enemy.
//   - Tank, unknown roles, or no living enemy: defend.
//
// Precondition: actor, allies, and enemies must be non-nil.
// Postcondition: always returns a Decision; Target is non-nil for attack,
// heal, and support-attack decisions and nil otherwise.
func ChooseAction(actor *Character, allies, enemies *Party) Decision {
	living := enemies.Living()
	if len(living) == 0 {
		// Nothing to act on; the loop is about to declare the outcome.
		return Decision{Action: ActionDefend}
	}

	switch actor.Role {
	case RoleAttacker:
		if len(living) >= aoeMinEnemies && actor.Cooldowns.AoeAttack == 0 {
			for _, e := range living {
				if e.Stats.HP <= aoeLowHPThreshold {
					return Decision{Action: ActionAoeAttack}
				}
			}
		}
		return Decision{Action: ActionAttack, Target: lowestHPEnemy(enemies)}

	case RoleHealer:
		target := mostDamagedAlly(allies)
		if target != nil && target.HPRatio() < healThreshold {
			return Decision{Action: ActionHeal, Target: target}
		}
		return Decision{Action: ActionDefend}

	case RoleSupporter:
		var target *Character
		for _, e := range living {
			if e.Role == RoleAttacker {
				target = e
				break
			}
		}
		if target == nil {
			target = lowestHPEnemy(enemies)
		}
		if target == nil {
			return Decision{Action: ActionDefend}
		}
		return Decision{Action: ActionSupportAttack, Target: target}

	case RoleTank:
		return Decision{Action: ActionDefend}

	default:
		return Decision{Action: ActionDefend}
	}
}
