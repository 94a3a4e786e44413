package service

import (
	"context"

	"reelnorm/internal/biz"
	"reelnorm/internal/conf"
	"reelnorm/internal/longsymbol"

	"github.com/yola1107/kratos/v2/log"
)

type ReelsRequest struct {
	GameID int64            `json:"game_id"`
	Reels  longsymbol.Reels `json:"reels"`
}

type ContentsRequest struct {
	GameID   int64           `json:"game_id"`
	Contents longsymbol.Reel `json:"contents"`
}

type ContentsReply struct {
	Contents longsymbol.Reel `json:"contents"`
}

type RollingRequest struct {
	GameID   int64           `json:"game_id"`
	Mode     string          `json:"mode"`
	Strip    longsymbol.Reel `json:"strip"`
	Contents longsymbol.Reel `json:"contents"`
}

type RollingReply struct {
	Strip longsymbol.Reel `json:"strip"`
}

type FiguresRequest struct {
	GameID int64 `json:"game_id"`
}

type FiguresReply struct {
	Figures []longsymbol.Figure `json:"figures"`
}

// NormalizeService is a normalize service.
type NormalizeService struct {
	uc     *biz.NormalizeUsecase
	warmup []int64
	log    *log.Helper
}

// NewNormalizeService new a normalize service.
func NewNormalizeService(uc *biz.NormalizeUsecase, c *conf.Normalizer, logger log.Logger) *NormalizeService {
	s := &NormalizeService{uc: uc, log: log.NewHelper(logger)}
	if c != nil {
		s.warmup = c.Warmup
	}
	return s
}

// Warmup loads the configured games. Failures are logged, games missing from the cache load on first use.
func (s *NormalizeService) Warmup(ctx context.Context) error {
	if len(s.warmup) == 0 {
		return nil
	}
	if err := s.uc.Warmup(ctx, s.warmup); err != nil {
		s.log.WithContext(ctx).Errorf("warmup games %v: %v", s.warmup, err)
		return nil
	}
	s.log.WithContext(ctx).Infof("warmup games %v done", s.warmup)
	return nil
}

func (s *NormalizeService) ExpandReels(ctx context.Context, in *ReelsRequest) (*longsymbol.Reels, error) {
	out, err := s.uc.ExpandReels(ctx, in.GameID, in.Reels)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NormalizeService) RestoreReels(ctx context.Context, in *ReelsRequest) (*longsymbol.Reels, error) {
	out, err := s.uc.RestoreReels(ctx, in.GameID, in.Reels)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NormalizeService) UpdateContents(ctx context.Context, in *ContentsRequest) (*ContentsReply, error) {
	out, err := s.uc.UpdateContents(ctx, in.GameID, in.Contents)
	if err != nil {
		return nil, err
	}
	return &ContentsReply{Contents: out}, nil
}

func (s *NormalizeService) Rolling(ctx context.Context, in *RollingRequest) (*RollingReply, error) {
	out, err := s.uc.Rolling(ctx, in.GameID, in.Mode, in.Strip, in.Contents)
	if err != nil {
		return nil, err
	}
	return &RollingReply{Strip: out}, nil
}

func (s *NormalizeService) AdditionalFigures(ctx context.Context, in *FiguresRequest) (*FiguresReply, error) {
	figures, err := s.uc.AdditionalFigures(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	return &FiguresReply{Figures: figures}, nil
}

func (s *NormalizeService) SaveGame(ctx context.Context, in *biz.GameConfig) (*biz.GameConfig, error) {
	return s.uc.SaveGame(ctx, in)
}
