package roster

import "github.com/sct202509kato/cli-card-battle/internal/game/battle"

// SampleParty builds the canonical four-member demo roster: an attacker, a
// healer, a supporter, and a tank, with member names prefixed by the party
// name. Used by the CLI when no party files are supplied, and by tests.
//
// Precondition: name must be non-empty.
// Postcondition: every member starts at full HP.
func SampleParty(name string) *battle.Party {
	mk := func(suffix string, role battle.Role, atk, vit, spd int) *battle.Character {
		return &battle.Character{
			Name: name + "_" + suffix,
			Role: role,
			Stats: battle.Stats{
				MaxHP: 100,
				HP:    100,
				Atk:   atk,
				Vit:   vit,
				Luk:   5,
				Spd:   spd,
			},
		}
	}
	return &battle.Party{
		Name: name,
		Members: []*battle.Character{
			mk("Att", battle.RoleAttacker, 6, 4, 6),
			mk("Heal", battle.RoleHealer, 3, 6, 5),
			mk("Sup", battle.RoleSupporter, 4, 4, 6),
			mk("Tank", battle.RoleTank, 4, 5, 4),
		},
	}
}
