// Package battle implements the deterministic party-vs-party combat engine.
package battle

// Role fixes a character's behavior policy for the lifetime of the battle.
// The zero value (RoleUnknown) is intentionally invalid; the selector degrades
// it to a defend.
type Role int

const (
	RoleUnknown Role = iota // zero value; intentionally invalid
	RoleAttacker
	RoleHealer
	RoleSupporter
	RoleTank
)

// String returns the human-readable name of the Role.
//
// Postcondition: returns "attacker", "healer", "supporter", "tank", or "unknown".
func (r Role) String() string {
	switch r {
	case RoleAttacker:
		return "attacker"
	case RoleHealer:
		return "healer"
	case RoleSupporter:
		return "supporter"
	case RoleTank:
		return "tank"
	default:
		return "unknown"
	}
}

// Stats holds a character's numeric attributes.
//
// Invariant: HP is in [0, MaxHP] after every mutation through Character methods.
type Stats struct {
	MaxHP int
	HP    int
	Atk   int
	Vit   int
	Luk   int // reserved; no formula reads it yet
	Spd   int
}

// Effects holds per-character combat modifiers.
//
// Defending and AtkBuff are transient: cleared at every round start. AtkDebuff
// persists across round boundaries until consumed by the next effective-attack
// computation.
type Effects struct {
	Defending bool
	AtkBuff   int // reserved; always 0 under current policies
	AtkDebuff int
}

// Cooldowns tracks per-character ability cooldowns in remaining rounds.
//
// Invariant: AoeAttack >= 0.
type Cooldowns struct {
	AoeAttack int
}

// Character is one combatant. Characters are constructed before the battle and
// mutated in place for its duration; a dead character stays in its party as
// state, it is never removed.
type Character struct {
	Name      string
	Role      Role
	Stats     Stats
	Effects   Effects
	Cooldowns Cooldowns
}

// Alive reports whether the character can still act.
//
// Postcondition: returns true iff Stats.HP > 0.
func (c *Character) Alive() bool {
	return c.Stats.HP > 0
}

// ClampHP bounds HP to [0, MaxHP].
//
// Postcondition: 0 <= Stats.HP <= Stats.MaxHP.
func (c *Character) ClampHP() {
	if c.Stats.HP > c.Stats.MaxHP {
		c.Stats.HP = c.Stats.MaxHP
	}
	if c.Stats.HP < 0 {
		c.Stats.HP = 0
	}
}

// HPRatio returns HP/MaxHP. A non-positive MaxHP yields 0 so malformed
// characters sort as most damaged instead of crashing.
func (c *Character) HPRatio() float64 {
	if c.Stats.MaxHP <= 0 {
		return 0
	}
	return float64(c.Stats.HP) / float64(c.Stats.MaxHP)
}

// EffectiveAttack returns the attack value for the next offensive roll:
// Atk + AtkBuff + AtkDebuff, floored at 1. A nonzero AtkDebuff is consumed
// (reset to 0) by this read, whichever action triggered it.
//
// Postcondition: returns >= 1; Effects.AtkDebuff == 0.
func (c *Character) EffectiveAttack() int {
	val := c.Stats.Atk + c.Effects.AtkBuff + c.Effects.AtkDebuff
	if c.Effects.AtkDebuff != 0 {
		c.Effects.AtkDebuff = 0
	}
	if val < 1 {
		val = 1
	}
	return val
}

// ApplyDamage applies raw damage to the character, reduced to floor(raw*0.6)
// while defending, then clamps HP. Returns the damage actually dealt.
//
// Precondition: raw >= 0.
// Postcondition: Stats.HP in [0, MaxHP]; return value >= 0.
func (c *Character) ApplyDamage(raw int) int {
	dmg := raw
	if c.Effects.Defending {
		dmg = int(float64(raw) * defendFactor)
	}
	c.Stats.HP -= dmg
	c.ClampHP()
	return dmg
}

// ApplyHeal raises HP by amount, clamped at MaxHP. Returns the amount actually
// healed after clamping.
//
// Precondition: amount >= 0.
// Postcondition: Stats.HP in [0, MaxHP]; return value >= 0.
func (c *Character) ApplyHeal(amount int) int {
	before := c.Stats.HP
	c.Stats.HP += amount
	c.ClampHP()
	return c.Stats.HP - before
}

// Party is an ordered collection of characters. Member order is construction
// order, not turn order.
type Party struct {
	Name    string
	Members []*Character
}

// Living returns the members with HP > 0, in member order.
//
// Postcondition: every returned character satisfies Alive().
func (p *Party) Living() []*Character {
	var alive []*Character
	for _, c := range p.Members {
		if c.Alive() {
			alive = append(alive, c)
		}
	}
	return alive
}

// Defeated reports whether every member is dead. An empty party is defeated.
//
// Postcondition: returns true iff no member satisfies Alive().
func (p *Party) Defeated() bool {
	for _, c := range p.Members {
		if c.Alive() {
			return false
		}
	}
	return true
}
