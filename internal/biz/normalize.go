package biz

import (
	"context"
	stderrors "errors"
	"strconv"
	"sync"
	"time"

	"reelnorm/internal/conf"
	"reelnorm/internal/longsymbol"

	"github.com/yola1107/kratos/v2/errors"
	"github.com/yola1107/kratos/v2/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const warmupConcurrency = 4

type gameEntry struct {
	config     *GameConfig
	normalizer *longsymbol.Normalizer
}

// NormalizeUsecase converts reels of a game between logical and cell symbols.
//
// Each game owns one normalizer. A saved config replaces the game's normalizer instead of
// mutating it, so in-flight calls keep working on the old snapshot.
type NormalizeUsecase struct {
	repo GameRepo
	pub  EventPublisher
	conf *conf.Normalizer
	zlog *zap.Logger
	log  *log.Helper

	mu    sync.RWMutex
	games map[int64]*gameEntry
	group singleflight.Group
}

// NewNormalizeUsecase new a Normalize usecase.
func NewNormalizeUsecase(c *conf.Normalizer, repo GameRepo, pub EventPublisher, zlog *zap.Logger, logger log.Logger) *NormalizeUsecase {
	if c == nil {
		c = &conf.Normalizer{}
	}
	if zlog == nil {
		zlog = zap.NewNop()
	}
	return &NormalizeUsecase{
		repo:  repo,
		pub:   pub,
		conf:  c,
		zlog:  zlog,
		log:   log.NewHelper(logger),
		games: make(map[int64]*gameEntry),
	}
}

func (uc *NormalizeUsecase) newNormalizer(cfg *GameConfig) (*longsymbol.Normalizer, error) {
	opts := []longsymbol.Option{
		longsymbol.WithReplaceSymbols(cfg.ReplaceSymbols),
		longsymbol.WithRandom(uc.conf.UseRandom),
		longsymbol.WithLogger(uc.zlog.With(zap.Int64("game", cfg.GameID))),
	}
	if uc.conf.Seed != 0 {
		opts = append(opts, longsymbol.WithSeed(uc.conf.Seed+cfg.GameID))
	}
	n, err := longsymbol.New(cfg.LongSymbols, opts...)
	if err != nil {
		return nil, errors.BadRequest(ReasonInvalidLongSymbols, err.Error())
	}
	return n, nil
}

func (uc *NormalizeUsecase) game(ctx context.Context, gameID int64) (*gameEntry, error) {
	uc.mu.RLock()
	g, ok := uc.games[gameID]
	uc.mu.RUnlock()
	if ok {
		return g, nil
	}

	// the load outlives a cancelled first caller
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := uc.group.Do(gameKey(gameID), func() (interface{}, error) {
		cfg, err := uc.repo.FindByID(loadCtx, gameID)
		if err != nil {
			return nil, err
		}
		n, err := uc.newNormalizer(cfg)
		if err != nil {
			return nil, err
		}
		uc.mu.Lock()
		defer uc.mu.Unlock()
		// a SaveGame that finished during the load wins
		if cur, ok := uc.games[gameID]; ok {
			return cur, nil
		}
		g := &gameEntry{config: cfg, normalizer: n}
		uc.games[gameID] = g
		uc.log.WithContext(loadCtx).Infof("load game %d: %d long symbols", gameID, n.Table().Len())
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gameEntry), nil
}

func gameKey(id int64) string { return strconv.FormatInt(id, 10) }

// Normalizer returns the normalizer of a game, loading it on first use.
func (uc *NormalizeUsecase) Normalizer(ctx context.Context, gameID int64) (*longsymbol.Normalizer, error) {
	g, err := uc.game(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return g.normalizer, nil
}

// Warmup loads several games concurrently.
func (uc *NormalizeUsecase) Warmup(ctx context.Context, gameIDs []int64) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(warmupConcurrency)
	for _, id := range gameIDs {
		eg.Go(func() error {
			_, err := uc.game(ctx, id)
			return err
		})
	}
	return eg.Wait()
}

// SaveGame validates and stores a game config and swaps in its new normalizer.
func (uc *NormalizeUsecase) SaveGame(ctx context.Context, cfg *GameConfig) (*GameConfig, error) {
	n, err := uc.newNormalizer(cfg)
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Save(ctx, cfg)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.games[saved.GameID] = &gameEntry{config: saved, normalizer: n}
	uc.mu.Unlock()
	uc.group.Forget(gameKey(saved.GameID))
	uc.log.WithContext(ctx).Infof("SaveGame: %d", saved.GameID)
	return saved, nil
}

// ExpandReels converts logical reels to cell reels and publishes the result.
func (uc *NormalizeUsecase) ExpandReels(ctx context.Context, gameID int64, reels longsymbol.Reels) (longsymbol.Reels, error) {
	n, err := uc.Normalizer(ctx, gameID)
	if err != nil {
		return longsymbol.Reels{}, err
	}
	out := n.ExpandReels(reels)
	if uc.pub != nil {
		ev := &ReelsEvent{GameID: gameID, Kind: EventReelsExpanded, Reels: out, CreatedAt: time.Now()}
		if err := uc.pub.Publish(ctx, ev); err != nil {
			uc.log.WithContext(ctx).Warnf("publish %s: game=%d err=%v", ev.Kind, gameID, err)
		}
	}
	return out, nil
}

// RestoreReels converts cell reels back to logical reels.
func (uc *NormalizeUsecase) RestoreReels(ctx context.Context, gameID int64, reels longsymbol.Reels) (longsymbol.Reels, error) {
	n, err := uc.Normalizer(ctx, gameID)
	if err != nil {
		return longsymbol.Reels{}, err
	}
	return n.RestoreReels(reels), nil
}

// UpdateContents stitches the edges of a visible window.
func (uc *NormalizeUsecase) UpdateContents(ctx context.Context, gameID int64, contents longsymbol.Reel) (longsymbol.Reel, error) {
	n, err := uc.Normalizer(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return n.UpdateContents(contents), nil
}

// Rolling prepares a rolling strip with the named mode.
func (uc *NormalizeUsecase) Rolling(ctx context.Context, gameID int64, mode string, strip, contents longsymbol.Reel) (longsymbol.Reel, error) {
	m, ok := longsymbol.RollingModeByName(mode)
	if !ok {
		return nil, errors.BadRequest(ReasonInvalidRolling, "unknown rolling mode: "+mode)
	}
	n, err := uc.Normalizer(ctx, gameID)
	if err != nil {
		return nil, err
	}
	out, err := n.Rolling(m, strip, contents)
	switch {
	case err == nil:
		return out, nil
	case stderrors.Is(err, longsymbol.ErrShortStrip), stderrors.Is(err, longsymbol.ErrEmptyPalette):
		return nil, errors.BadRequest(ReasonInvalidRolling, err.Error())
	default:
		return nil, err
	}
}

// AdditionalFigures returns the paytable figures of every long symbol cell of a game.
func (uc *NormalizeUsecase) AdditionalFigures(ctx context.Context, gameID int64) ([]longsymbol.Figure, error) {
	g, err := uc.game(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return g.normalizer.AdditionalFigures(g.config.Figures), nil
}
