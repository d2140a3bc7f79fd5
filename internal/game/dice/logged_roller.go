package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// All rolls are logged at debug level with die count, dice values, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn delegates to the wrapped Source so a Roller can stand in anywhere a
// Source is expected. Single draws (shuffle tie-breaks) pass through here
// unlogged; dice rolls reach Roll via RollDice instead.
//
// Precondition: n > 0.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}

// Roll rolls n dice and logs the result at debug level. RollDice routes here
// whenever its Source is a *Roller, so every engine roll is logged.
//
// Precondition: n >= 1.
// Postcondition: result logged; len(result.Dice) == n.
func (r *Roller) Roll(n int) RollResult {
	result := RollDice(r.src, n)
	r.logger.Debug("dice roll",
		zap.Int("count", n),
		zap.Ints("dice", result.Dice),
		zap.Int("total", result.Total()),
	)
	return result
}
