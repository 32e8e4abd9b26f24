package main

import (
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jaminalder/codex-klondike/internal/app"
	"github.com/jaminalder/codex-klondike/internal/config"
	"github.com/jaminalder/codex-klondike/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "listen address (overrides the config)")
	maxRank := flag.Int("max-rank", 0, "highest card rank (overrides the config)")
	seed := flag.Int64("seed", 0, "deal seed (overrides the config)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *maxRank != 0 {
		cfg.MaxRank = *maxRank
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	svc := app.NewService(logger)
	svc.SetDeal(cfg.MaxRank, seedFunc(cfg.Seed))

	logger.Info("listening", zap.String("addr", cfg.Addr), zap.Int("max_rank", cfg.MaxRank))
	if err := http.ListenAndServe(cfg.Addr, web.NewServer(svc)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// seedFunc turns a configured seed into a deal seed source. Zero keeps the
// clock-derived default.
func seedFunc(seed int64) func() int64 {
	if seed == 0 {
		return func() int64 { return time.Now().UnixNano() }
	}
	return func() int64 { return seed }
}
