// Package main provides the battlesim binary: it wires configuration, logging,
// rosters, and a seeded randomness source into one battle run and renders the
// engine's structured records.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/sct202509kato/cli-card-battle/internal/config"
	"github.com/sct202509kato/cli-card-battle/internal/game/battle"
	"github.com/sct202509kato/cli-card-battle/internal/game/dice"
	"github.com/sct202509kato/cli-card-battle/internal/game/roster"
	"github.com/sct202509kato/cli-card-battle/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	partiesDir := flag.String("parties-dir", "", "directory of party YAML files; empty = sample parties")
	partyA := flag.String("party-a", "", "name of the first party (requires -parties-dir)")
	partyB := flag.String("party-b", "", "name of the second party (requires -parties-dir)")
	seed := flag.Int64("seed", 0, "randomness seed; omit for a random, logged seed")
	turnLimit := flag.Int("turn-limit", 0, "round ceiling; 0 = config value")
	flag.Parse()

	seedGiven := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedGiven = true
		}
	})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	// Flags override config.
	if *partiesDir != "" {
		cfg.Battle.PartiesDir = *partiesDir
	}
	if *partyA != "" {
		cfg.Battle.PartyA = *partyA
	}
	if *partyB != "" {
		cfg.Battle.PartyB = *partyB
	}
	if *turnLimit > 0 {
		cfg.Battle.TurnLimit = *turnLimit
	}
	if seedGiven {
		cfg.Battle.Seed = *seed
		cfg.Battle.SeedSet = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	a, b, err := loadParties(cfg.Battle)
	if err != nil {
		logger.Fatal("loading parties", zap.Error(err))
	}

	battleSeed := cfg.Battle.Seed
	if !cfg.Battle.SeedSet {
		battleSeed, err = dice.NewSeed()
		if err != nil {
			logger.Fatal("generating seed", zap.Error(err))
		}
	}
	logger.Info("seeding battle", zap.Int64("seed", battleSeed))

	src := dice.NewLoggedRoller(dice.NewSeededSource(battleSeed), logger)
	report := battle.NewEngine(a, b, src, cfg.Battle.TurnLimit, logger).Run()

	render(os.Stdout, a, b, battleSeed, cfg.Battle.TurnLimit, report)
}

// loadParties resolves the two parties from the configured roster directory,
// falling back to the built-in sample rosters when none is configured.
func loadParties(cfg config.BattleConfig) (*battle.Party, *battle.Party, error) {
	if cfg.PartiesDir == "" {
		return roster.SampleParty("A"), roster.SampleParty("B"), nil
	}

	templates, err := roster.LoadTemplates(cfg.PartiesDir)
	if err != nil {
		return nil, nil, err
	}
	ta, ok := templates[cfg.PartyA]
	if !ok {
		return nil, nil, fmt.Errorf("party %q not found in %q", cfg.PartyA, cfg.PartiesDir)
	}
	tb, ok := templates[cfg.PartyB]
	if !ok {
		return nil, nil, fmt.Errorf("party %q not found in %q", cfg.PartyB, cfg.PartiesDir)
	}
	if cfg.PartyA == cfg.PartyB {
		return nil, nil, fmt.Errorf("party_a and party_b must name different parties, both are %q", cfg.PartyA)
	}
	return ta.Build(), tb.Build(), nil
}
