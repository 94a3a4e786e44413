package data

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"reelnorm/encoding"
	"reelnorm/internal/biz"
	"reelnorm/internal/conf"
	"reelnorm/internal/longsymbol"

	"github.com/redis/go-redis/v9"
	"github.com/yola1107/kratos/v2/log"
	"xorm.io/xorm"
)

const (
	gameCacheKeyPrefix = "reelnorm:game:"
	defaultCacheTTL    = 10 * time.Minute
)

// gameRow stores the long symbol setup of a game. Table and figures are JSON columns.
type gameRow struct {
	GameID         int64     `xorm:"pk 'game_id'"`
	LongSymbols    string    `xorm:"text 'long_symbols'"`
	ReplaceSymbols string    `xorm:"text 'replace_symbols'"`
	Figures        string    `xorm:"mediumtext 'figures'"`
	Created        time.Time `xorm:"created"`
	Updated        time.Time `xorm:"updated"`
}

func (gameRow) TableName() string { return "long_symbol_game" }

func toGameRow(g *biz.GameConfig) (*gameRow, error) {
	longSymbols, err := encoding.Marshal(g.LongSymbols)
	if err != nil {
		return nil, fmt.Errorf("encode long symbols: %w", err)
	}
	replace, err := encoding.Marshal(g.ReplaceSymbols)
	if err != nil {
		return nil, fmt.Errorf("encode replace symbols: %w", err)
	}
	figures, err := encoding.Marshal(g.Figures)
	if err != nil {
		return nil, fmt.Errorf("encode figures: %w", err)
	}
	return &gameRow{
		GameID:         g.GameID,
		LongSymbols:    string(longSymbols),
		ReplaceSymbols: string(replace),
		Figures:        string(figures),
	}, nil
}

func (r *gameRow) toConfig() (*biz.GameConfig, error) {
	g := &biz.GameConfig{GameID: r.GameID}
	if err := unmarshalColumn(r.LongSymbols, &g.LongSymbols); err != nil {
		return nil, fmt.Errorf("decode long symbols of game %d: %w", r.GameID, err)
	}
	if err := unmarshalColumn(r.ReplaceSymbols, &g.ReplaceSymbols); err != nil {
		return nil, fmt.Errorf("decode replace symbols of game %d: %w", r.GameID, err)
	}
	if err := unmarshalColumn(r.Figures, &g.Figures); err != nil {
		return nil, fmt.Errorf("decode figures of game %d: %w", r.GameID, err)
	}
	if g.LongSymbols == nil {
		g.LongSymbols = longsymbol.LongSymbols{}
	}
	return g, nil
}

func unmarshalColumn(s string, v interface{}) error {
	if s == "" {
		return nil
	}
	return encoding.UnmarshalFromString(s, v)
}

func gameCacheKey(id int64) string {
	return gameCacheKeyPrefix + strconv.FormatInt(id, 10)
}

// gameStore is the durable storage of game rows.
type gameStore interface {
	Get(ctx context.Context, id int64) (*gameRow, bool, error)
	Upsert(ctx context.Context, row *gameRow) error
}

type xormGameStore struct {
	db *xorm.Engine
}

func (s *xormGameStore) Get(ctx context.Context, id int64) (*gameRow, bool, error) {
	row := &gameRow{}
	has, err := s.db.Context(ctx).Where("game_id = ?", id).Get(row)
	return row, has, err
}

func (s *xormGameStore) Upsert(ctx context.Context, row *gameRow) error {
	has, err := s.db.Context(ctx).Where("game_id = ?", row.GameID).Exist(new(gameRow))
	if err != nil {
		return err
	}
	if has {
		_, err = s.db.Context(ctx).ID(row.GameID).AllCols().Update(row)
	} else {
		_, err = s.db.Context(ctx).Insert(row)
	}
	return err
}

type gameRepo struct {
	store gameStore
	rdb   redis.UniversalClient
	ttl   time.Duration
	log   *log.Helper
}

// NewGameRepo .
func NewGameRepo(data *Data, c *conf.Data, logger log.Logger) biz.GameRepo {
	return newGameRepo(&xormGameStore{db: data.db}, data.rdb, c, logger)
}

func newGameRepo(store gameStore, rdb redis.UniversalClient, c *conf.Data, logger log.Logger) *gameRepo {
	ttl := defaultCacheTTL
	if c != nil && c.Redis != nil && c.Redis.CacheTtl.AsDuration() > 0 {
		ttl = c.Redis.CacheTtl.AsDuration()
	}
	return &gameRepo{
		store: store,
		rdb:   rdb,
		ttl:   ttl,
		log:   log.NewHelper(logger),
	}
}

func (r *gameRepo) FindByID(ctx context.Context, id int64) (*biz.GameConfig, error) {
	key := gameCacheKey(id)
	cached, err := r.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var g biz.GameConfig
		if err := encoding.UnmarshalFromString(cached, &g); err == nil {
			return &g, nil
		}
		r.log.WithContext(ctx).Warnf("drop corrupt cache entry %s", key)
		if err := r.rdb.Del(ctx, key).Err(); err != nil {
			r.log.WithContext(ctx).Warnf("redis del %s: %v", key, err)
		}
	case !stderrors.Is(err, redis.Nil):
		r.log.WithContext(ctx).Warnf("redis get %s: %v", key, err)
	}

	row, has, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find game %d: %w", id, err)
	}
	if !has {
		return nil, biz.ErrGameNotFound
	}
	g, err := row.toConfig()
	if err != nil {
		return nil, err
	}
	// SetNX leaves an entry written by a concurrent Save in place
	if err := r.rdb.SetNX(ctx, key, encoding.ToJson(g), r.ttl).Err(); err != nil {
		r.log.WithContext(ctx).Warnf("redis setnx %s: %v", key, err)
	}
	return g, nil
}

func (r *gameRepo) Save(ctx context.Context, g *biz.GameConfig) (*biz.GameConfig, error) {
	row, err := toGameRow(g)
	if err != nil {
		return nil, err
	}
	if err := r.store.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("save game %d: %w", g.GameID, err)
	}
	key := gameCacheKey(g.GameID)
	if err := r.rdb.Set(ctx, key, encoding.ToJson(g), r.ttl).Err(); err != nil {
		r.log.WithContext(ctx).Warnf("redis set %s: %v", key, err)
		if err := r.rdb.Del(ctx, key).Err(); err != nil {
			r.log.WithContext(ctx).Warnf("redis del %s: %v", key, err)
		}
	}
	return g, nil
}
