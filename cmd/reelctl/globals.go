package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"reelnorm/encoding"
	"reelnorm/internal/biz"
	"reelnorm/internal/longsymbol"

	"github.com/charmbracelet/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Globals are the flags shared by every command.
type Globals struct {
	Game    string `short:"g" help:"Game config JSON file" type:"existingfile" required:""`
	Random  bool   `short:"r" help:"Draw fillers and tile offsets randomly"`
	Seed    int64  `short:"s" help:"Seed for random draws, 0 seeds from the system"`
	Verbose bool   `short:"v" help:"Log normalizer warnings"`
}

var logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

func (g *Globals) loadGame() (*biz.GameConfig, error) {
	b, err := os.ReadFile(g.Game)
	if err != nil {
		return nil, err
	}
	var cfg biz.GameConfig
	if err := encoding.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", g.Game, err)
	}
	return &cfg, nil
}

func (g *Globals) normalizer() (*longsymbol.Normalizer, *biz.GameConfig, error) {
	cfg, err := g.loadGame()
	if err != nil {
		return nil, nil, err
	}
	opts := []longsymbol.Option{
		longsymbol.WithReplaceSymbols(cfg.ReplaceSymbols),
		longsymbol.WithRandom(g.Random),
		longsymbol.WithLogger(g.zapLogger()),
	}
	if g.Seed != 0 {
		opts = append(opts, longsymbol.WithSeed(g.Seed))
	}
	n, err := longsymbol.New(cfg.LongSymbols, opts...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("loaded game", "game", cfg.GameID, "symbols", n.Table().Len(), "random", g.Random)
	return n, cfg, nil
}

func (g *Globals) zapLogger() *zap.Logger {
	if !g.Verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel))
}

// parseReel reads a comma separated list of symbol ids.
func parseReel(s string) (longsymbol.Reel, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return longsymbol.Reel{}, nil
	}
	parts := strings.Split(s, ",")
	reel := make(longsymbol.Reel, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid symbol %q", p)
		}
		reel = append(reel, id)
	}
	return reel, nil
}

func parseMatrix(reels []string) (longsymbol.Matrix, error) {
	m := make(longsymbol.Matrix, 0, len(reels))
	for i, s := range reels {
		reel, err := parseReel(s)
		if err != nil {
			return nil, fmt.Errorf("reel %d: %w", i+1, err)
		}
		m = append(m, reel)
	}
	return m, nil
}

func formatReel(reel longsymbol.Reel) string {
	parts := make([]string, len(reel))
	for i, id := range reel {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
