package main

import (
	"flag"
	"log"
	"time"

	"github.com/jaminalder/codex-klondike/internal/config"
	"github.com/jaminalder/codex-klondike/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	maxRank := flag.Int("max-rank", 0, "highest card rank (overrides the config)")
	seed := flag.Int64("seed", 0, "deal seed (overrides the config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *maxRank != 0 {
		cfg.MaxRank = *maxRank
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	seedFn := func() int64 { return time.Now().UnixNano() }
	if cfg.Seed != 0 {
		fixed := cfg.Seed
		seedFn = func() int64 { return fixed }
	}

	if err := tui.Run(cfg.MaxRank, seedFn); err != nil {
		log.Fatal(err)
	}
}
