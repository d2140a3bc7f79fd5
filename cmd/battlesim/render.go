package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sct202509kato/cli-card-battle/internal/game/battle"
)

// render writes a human-readable battle transcript built entirely from the
// report's structured records; no combat state is recomputed.
func render(w io.Writer, a, b *battle.Party, seed int64, turnLimit int, report battle.Report) {
	fmt.Fprintf(w, "=== Battle %s: %s vs %s (seed=%d, turn_limit=%d) ===\n",
		report.ID, a.Name, b.Name, seed, turnLimit)
	renderParty(w, a)
	renderParty(w, b)

	round := 0
	for _, rec := range report.Records {
		if rec.Round != round {
			round = rec.Round
			fmt.Fprintf(w, "\n--- Round %d ---\n", round)
		}
		fmt.Fprintln(w, formatRecord(rec))
	}

	fmt.Fprintln(w)
	switch report.Outcome.Verdict {
	case battle.VerdictWon:
		fmt.Fprintf(w, "=== Winner: %s (round %d) ===\n", report.Outcome.Winner, report.Rounds)
	default:
		fmt.Fprintf(w, "=== Draw (turn limit reached after %d rounds) ===\n", report.Rounds)
	}
}

func renderParty(w io.Writer, p *battle.Party) {
	fmt.Fprintf(w, "[%s]\n", p.Name)
	for _, c := range p.Members {
		s := c.Stats
		fmt.Fprintf(w, "  - %-10s %-9s HP=%d/%d ATK=%d VIT=%d SPD=%d\n",
			c.Name, c.Role, s.HP, s.MaxHP, s.Atk, s.Vit, s.Spd)
	}
}

// formatRecord renders one resolved action as a single log line.
func formatRecord(rec battle.Record) string {
	switch rec.Action {
	case battle.ActionDefend:
		return fmt.Sprintf("%s defends (incoming dmg x0.6)", rec.Actor)

	case battle.ActionHeal:
		t := rec.Targets[0]
		return fmt.Sprintf("%s heals %s: dice=%v, heal=%d -> +%d | %s HP=%d",
			rec.Actor, t.Name, rec.Dice, t.Raw, t.Actual, t.Name, t.HPAfter)

	case battle.ActionAoeAttack:
		hits := make([]string, 0, len(rec.Targets))
		for _, t := range rec.Targets {
			hits = append(hits, fmt.Sprintf("%s%s -%d (HP %d)", t.Name, defTag(t), t.Actual, t.HPAfter))
		}
		return fmt.Sprintf("%s unleashes an AOE attack! dice=%v, mult=%.1f raw=%d | %s | CT=%d",
			rec.Actor, rec.Dice, rec.Multiplier, rec.Targets[0].Raw,
			strings.Join(hits, ", "), rec.AoeCooldown)

	case battle.ActionSupportAttack:
		t := rec.Targets[0]
		return fmt.Sprintf("%s support-attacks %s%s: dice=%v, mult=%.1f raw=%d -> dmg=%d | %s HP=%d | %s ATK debuff -2",
			rec.Actor, t.Name, defTag(t), rec.Dice, rec.Multiplier, t.Raw, t.Actual, t.Name, t.HPAfter, t.Name)

	case battle.ActionAttack:
		t := rec.Targets[0]
		line := fmt.Sprintf("%s attacks %s%s: dice=%v, mult=%.1f raw=%d -> dmg=%d | %s HP=%d",
			rec.Actor, t.Name, defTag(t), rec.Dice, rec.Multiplier, t.Raw, t.Actual, t.Name, t.HPAfter)
		if rec.Role == battle.RoleAttacker {
			line += fmt.Sprintf(" | %s AOE_CT=%d", rec.Actor, rec.AoeCooldown)
		}
		return line

	default:
		return fmt.Sprintf("%s does nothing", rec.Actor)
	}
}

func defTag(t battle.TargetResult) string {
	if t.Defending {
		return " (DEF)"
	}
	return ""
}
