package service

import (
	"context"

	"reelnorm/internal/biz"

	"github.com/yola1107/kratos/v2/transport/http"
)

const (
	OperationNormalizeExpandReels       = "/reelnorm.v1.Normalize/ExpandReels"
	OperationNormalizeRestoreReels      = "/reelnorm.v1.Normalize/RestoreReels"
	OperationNormalizeUpdateContents    = "/reelnorm.v1.Normalize/UpdateContents"
	OperationNormalizeRolling           = "/reelnorm.v1.Normalize/Rolling"
	OperationNormalizeAdditionalFigures = "/reelnorm.v1.Normalize/AdditionalFigures"
	OperationNormalizeSaveGame          = "/reelnorm.v1.Normalize/SaveGame"
)

// RegisterNormalizeHTTPServer registers the normalize routes on s.
func RegisterNormalizeHTTPServer(s *http.Server, srv *NormalizeService) {
	r := s.Route("/")
	r.POST("/v1/reels/expand", _Normalize_ExpandReels0_HTTP_Handler(srv))
	r.POST("/v1/reels/restore", _Normalize_RestoreReels0_HTTP_Handler(srv))
	r.POST("/v1/contents", _Normalize_UpdateContents0_HTTP_Handler(srv))
	r.POST("/v1/rolling", _Normalize_Rolling0_HTTP_Handler(srv))
	r.GET("/v1/figures", _Normalize_AdditionalFigures0_HTTP_Handler(srv))
	r.PUT("/v1/games", _Normalize_SaveGame0_HTTP_Handler(srv))
}

func _Normalize_ExpandReels0_HTTP_Handler(srv *NormalizeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ReelsRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationNormalizeExpandReels)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ExpandReels(ctx, req.(*ReelsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Normalize_RestoreReels0_HTTP_Handler(srv *NormalizeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ReelsRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationNormalizeRestoreReels)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.RestoreReels(ctx, req.(*ReelsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Normalize_UpdateContents0_HTTP_Handler(srv *NormalizeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ContentsRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationNormalizeUpdateContents)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.UpdateContents(ctx, req.(*ContentsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Normalize_Rolling0_HTTP_Handler(srv *NormalizeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in RollingRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationNormalizeRolling)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Rolling(ctx, req.(*RollingRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Normalize_AdditionalFigures0_HTTP_Handler(srv *NormalizeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in FiguresRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationNormalizeAdditionalFigures)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.AdditionalFigures(ctx, req.(*FiguresRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Normalize_SaveGame0_HTTP_Handler(srv *NormalizeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in biz.GameConfig
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationNormalizeSaveGame)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SaveGame(ctx, req.(*biz.GameConfig))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}
