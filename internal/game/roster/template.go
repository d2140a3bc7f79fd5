// Package roster provides YAML party definitions and party construction for
// the battle engine.
package roster

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sct202509kato/cli-card-battle/internal/game/battle"
)

// MaxMembers caps the party size a template may declare.
const MaxMembers = 8

// StatsTemplate holds the stat block for one member as declared in YAML.
// HP is optional: nil means "start at max_hp". An explicit hp of 0 builds an
// already-dead character, which the engine tolerates.
type StatsTemplate struct {
	MaxHP int  `yaml:"max_hp"`
	HP    *int `yaml:"hp"`
	Atk   int  `yaml:"atk"`
	Vit   int  `yaml:"vit"`
	Luk   int  `yaml:"luk"`
	Spd   int  `yaml:"spd"`
}

// MemberTemplate declares one party member.
type MemberTemplate struct {
	Name  string        `yaml:"name"`
	Role  string        `yaml:"role"`
	Stats StatsTemplate `yaml:"stats"`
}

// Template defines a party loaded from YAML.
type Template struct {
	Name    string           `yaml:"name"`
	Members []MemberTemplate `yaml:"members"`
}

// ParseRole maps a YAML role string to a battle.Role.
//
// Postcondition: returns a valid role, or an error naming the bad input.
func ParseRole(s string) (battle.Role, error) {
	switch strings.ToLower(s) {
	case "attacker":
		return battle.RoleAttacker, nil
	case "healer":
		return battle.RoleHealer, nil
	case "supporter":
		return battle.RoleSupporter, nil
	case "tank":
		return battle.RoleTank, nil
	default:
		return battle.RoleUnknown, fmt.Errorf("unknown role %q (want attacker, healer, supporter, or tank)", s)
	}
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff the party name is non-empty, the member count
// is in [1, MaxMembers], and every member has a unique non-empty name, a known
// role, max_hp >= 1, hp (when given) in [0, max_hp], and non-negative stats.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("party template: name must not be empty")
	}
	if len(t.Members) == 0 {
		return fmt.Errorf("party template %q: members must not be empty", t.Name)
	}
	if len(t.Members) > MaxMembers {
		return fmt.Errorf("party template %q: at most %d members allowed, got %d", t.Name, MaxMembers, len(t.Members))
	}
	seen := make(map[string]bool, len(t.Members))
	for i, m := range t.Members {
		if m.Name == "" {
			return fmt.Errorf("party template %q: member %d: name must not be empty", t.Name, i)
		}
		if seen[m.Name] {
			return fmt.Errorf("party template %q: duplicate member name %q", t.Name, m.Name)
		}
		seen[m.Name] = true
		if _, err := ParseRole(m.Role); err != nil {
			return fmt.Errorf("party template %q: member %q: %w", t.Name, m.Name, err)
		}
		s := m.Stats
		if s.MaxHP < 1 {
			return fmt.Errorf("party template %q: member %q: max_hp must be >= 1", t.Name, m.Name)
		}
		if s.HP != nil && (*s.HP < 0 || *s.HP > s.MaxHP) {
			return fmt.Errorf("party template %q: member %q: hp must be in [0, max_hp], got %d", t.Name, m.Name, *s.HP)
		}
		if s.Atk < 0 || s.Vit < 0 || s.Luk < 0 || s.Spd < 0 {
			return fmt.Errorf("party template %q: member %q: stats must not be negative", t.Name, m.Name)
		}
	}
	return nil
}

// Build constructs a fresh battle.Party from the template. Each call returns
// independent characters; battles mutate parties in place, so a template must
// be rebuilt before reuse.
//
// Precondition: t must have passed Validate.
// Postcondition: each character's HP is in [0, MaxHP].
func (t *Template) Build() *battle.Party {
	members := make([]*battle.Character, 0, len(t.Members))
	for _, m := range t.Members {
		role, err := ParseRole(m.Role)
		if err != nil {
			role = battle.RoleUnknown
		}
		hp := m.Stats.MaxHP
		if m.Stats.HP != nil {
			hp = *m.Stats.HP
		}
		members = append(members, &battle.Character{
			Name: m.Name,
			Role: role,
			Stats: battle.Stats{
				MaxHP: m.Stats.MaxHP,
				HP:    hp,
				Atk:   m.Stats.Atk,
				Vit:   m.Stats.Vit,
				Luk:   m.Stats.Luk,
				Spd:   m.Stats.Spd,
			},
		})
	}
	return &battle.Party{Name: t.Name, Members: members}
}

// LoadTemplateFromBytes parses a single party template from raw YAML bytes.
// Unknown fields are rejected.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tmpl); err != nil {
		return nil, fmt.Errorf("parsing party YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplate reads and parses one party template file.
//
// Precondition: path must be a readable YAML file.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	tmpl, err := LoadTemplateFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed
// templates keyed by party name.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) (map[string]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading party dir %q: %w", dir, err)
	}

	templates := make(map[string]*Template)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		tmpl, err := LoadTemplate(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := templates[tmpl.Name]; dup {
			return nil, fmt.Errorf("duplicate party name %q in %q", tmpl.Name, dir)
		}
		templates[tmpl.Name] = tmpl
	}
	return templates, nil
}
