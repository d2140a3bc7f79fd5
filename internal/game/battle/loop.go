package battle

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sct202509kato/cli-card-battle/internal/game/dice"
)

// DefaultTurnLimit is the round ceiling used when no limit is configured.
// Reaching it without an elimination is a draw, a designed mechanic rather
// than an abort path.
const DefaultTurnLimit = 50

// Verdict is the battle's terminal-state discriminator.
type Verdict int

const (
	VerdictInProgress Verdict = iota
	VerdictWon
	VerdictDraw
)

// String returns a human-readable verdict label.
func (v Verdict) String() string {
	switch v {
	case VerdictInProgress:
		return "in progress"
	case VerdictWon:
		return "won"
	case VerdictDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is the battle's result. Winner is the winning party's name and is
// empty unless Verdict == VerdictWon.
type Outcome struct {
	Verdict Verdict
	Winner  string
}

// Report is the full, structured account of one battle run.
type Report struct {
	ID      uuid.UUID
	Outcome Outcome
	Rounds  int // rounds that started; 0 when the battle is decided on input
	Records []Record
}

// Engine runs a single battle between two parties. It owns the parties'
// state exclusively for the duration of Run; no external aliasing is
// permitted while a battle is in flight. The engine is single-threaded.
type Engine struct {
	partyA    *Party
	partyB    *Party
	src       dice.Source
	turnLimit int
	logger    *zap.Logger
}

// NewEngine creates a battle engine. A turnLimit < 1 falls back to
// DefaultTurnLimit; a nil logger falls back to a no-op logger.
//
// Precondition: a, b, and src must be non-nil.
func NewEngine(a, b *Party, src dice.Source, turnLimit int, logger *zap.Logger) *Engine {
	if turnLimit < 1 {
		turnLimit = DefaultTurnLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		partyA:    a,
		partyB:    b,
		src:       src,
		turnLimit: turnLimit,
		logger:    logger,
	}
}

// checkDefeat evaluates elimination after one resolution. The acting side's
// enemy party is checked before the actor's own party, so when a single
// resolution empties both (not reachable under current actions, which never
// damage the actor's own side) the actor's party is reported the winner.
//
// Postcondition: returns (Outcome, true) iff either party is defeated.
func checkDefeat(allies, enemies *Party) (Outcome, bool) {
	if enemies.Defeated() {
		return Outcome{Verdict: VerdictWon, Winner: allies.Name}, true
	}
	if allies.Defeated() {
		return Outcome{Verdict: VerdictWon, Winner: enemies.Name}, true
	}
	return Outcome{Verdict: VerdictInProgress}, false
}

// Run executes the battle to completion and returns its Report. Characters
// are mutated in place; elimination is state, never removal. Given the same
// Source stream and the same starting rosters, Run produces an identical
// Record sequence and Outcome.
//
// Postcondition: the returned Outcome's Verdict is VerdictWon or VerdictDraw.
func (e *Engine) Run() Report {
	report := Report{ID: uuid.New()}

	e.logger.Info("battle start",
		zap.String("battle_id", report.ID.String()),
		zap.String("party_a", e.partyA.Name),
		zap.String("party_b", e.partyB.Name),
		zap.Int("turn_limit", e.turnLimit),
	)

	// Malformed input resolves to an immediate outcome, never an error.
	if e.partyA.Defeated() && e.partyB.Defeated() {
		report.Outcome = Outcome{Verdict: VerdictDraw}
		return e.finish(report)
	}
	if e.partyB.Defeated() {
		report.Outcome = Outcome{Verdict: VerdictWon, Winner: e.partyA.Name}
		return e.finish(report)
	}
	if e.partyA.Defeated() {
		report.Outcome = Outcome{Verdict: VerdictWon, Winner: e.partyB.Name}
		return e.finish(report)
	}

	for round := 1; round <= e.turnLimit; round++ {
		report.Rounds = round
		e.logger.Debug("round start", zap.Int("round", round))

		TickCooldowns(e.partyA, e.partyB)
		ResetTransientEffects(e.partyA, e.partyB)
		order := BuildTurnOrder(e.partyA, e.partyB, e.src)

		for _, turn := range order {
			if !turn.Actor.Alive() {
				continue
			}

			decision := ChooseAction(turn.Actor, turn.Allies, turn.Enemies)
			if rec := Resolve(turn, decision, round, e.src); rec != nil {
				report.Records = append(report.Records, *rec)
				e.logger.Debug("action resolved",
					zap.Int("round", round),
					zap.String("actor", rec.Actor),
					zap.Stringer("action", rec.Action),
					zap.Ints("dice", rec.Dice),
					zap.Float64("multiplier", rec.Multiplier),
				)
			}

			// Terminate mid-round, mid-order, the moment a party falls.
			if outcome, over := checkDefeat(turn.Allies, turn.Enemies); over {
				report.Outcome = outcome
				return e.finish(report)
			}
		}
	}

	report.Outcome = Outcome{Verdict: VerdictDraw}
	return e.finish(report)
}

func (e *Engine) finish(report Report) Report {
	report.Outcome = normalize(report.Outcome)
	e.logger.Info("battle over",
		zap.String("battle_id", report.ID.String()),
		zap.Stringer("verdict", report.Outcome.Verdict),
		zap.String("winner", report.Outcome.Winner),
		zap.Int("rounds", report.Rounds),
		zap.Int("actions", len(report.Records)),
	)
	return report
}

// normalize guards the Report postcondition: a finished battle never reports
// VerdictInProgress.
func normalize(o Outcome) Outcome {
	if o.Verdict == VerdictInProgress {
		return Outcome{Verdict: VerdictDraw}
	}
	return o
}

// RunSeeded is a convenience wrapper that runs a battle with a deterministic
// Source built from seed. Same seed and same starting rosters yield an
// identical Report (the random battle ID aside).
//
// Precondition: a and b must be non-nil.
func RunSeeded(a, b *Party, seed int64, turnLimit int, logger *zap.Logger) Report {
	return NewEngine(a, b, dice.NewSeededSource(seed), turnLimit, logger).Run()
}
