package biz

import (
	"context"
	"time"

	"reelnorm/internal/longsymbol"

	"github.com/yola1107/kratos/v2/errors"
)

const (
	ReasonGameNotFound       = "GAME_NOT_FOUND"
	ReasonInvalidLongSymbols = "INVALID_LONG_SYMBOLS"
	ReasonInvalidRolling     = "INVALID_ROLLING"
)

var (
	// ErrGameNotFound is game config not found.
	ErrGameNotFound = errors.NotFound(ReasonGameNotFound, "game not found")
)

// GameConfig is the long symbol setup of one game.
type GameConfig struct {
	GameID         int64                  `json:"game_id"`
	LongSymbols    longsymbol.LongSymbols `json:"long_symbols"`
	ReplaceSymbols []int64                `json:"replace_symbols"`
	Figures        []longsymbol.Figure    `json:"figures"`
}

// GameRepo stores game configs. FindByID returns ErrGameNotFound for unknown games.
type GameRepo interface {
	FindByID(context.Context, int64) (*GameConfig, error)
	Save(context.Context, *GameConfig) (*GameConfig, error)
}

const EventReelsExpanded = "reels.expanded"

// ReelsEvent is published after reels are converted for display.
type ReelsEvent struct {
	GameID    int64            `json:"game_id"`
	Kind      string           `json:"kind"`
	Reels     longsymbol.Reels `json:"reels"`
	CreatedAt time.Time        `json:"created_at"`
}

// EventPublisher delivers reel events to downstream consumers.
type EventPublisher interface {
	Publish(context.Context, *ReelsEvent) error
}
