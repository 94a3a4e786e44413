package main

import (
	"context"
	"flag"
	"time"

	"reelnorm/internal/biz"
	"reelnorm/internal/longsymbol"
	"reelnorm/internal/service"

	"github.com/yola1107/kratos/contrib/log/zap/v2"
	"github.com/yola1107/kratos/v2/log"
	"github.com/yola1107/kratos/v2/transport/http"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8000", "service address")
	gameID := flag.Int64("game", 1001, "game id")
	flag.Parse()

	zapLogger := zap.New(nil)
	defer zapLogger.Close()

	log.SetLogger(zapLogger)

	log.Infof("start http client")
	defer log.Infof("close http client")

	ctx := context.Background()
	c, err := http.NewClient(ctx, http.WithEndpoint(*addr), http.WithTimeout(5*time.Second))
	if err != nil {
		panic(err)
	}
	defer c.Close()

	game := &biz.GameConfig{
		GameID:         *gameID,
		LongSymbols:    longsymbol.LongSymbols{5: {48, 49, 50, 51}, 6: {52, 53, 54, 55}},
		ReplaceSymbols: []int64{1, 2, 3},
	}
	if err := c.Invoke(ctx, "PUT", "/v1/games", game, &biz.GameConfig{}); err != nil {
		panic(err)
	}

	i := 0
	for {
		reels := longsymbol.Reels{Matrix: longsymbol.Matrix{
			{1, 5, 5, 5, 5},
			{6, 6, 2, 3, 6},
			{5, 5, 5},
		}}
		var expanded longsymbol.Reels
		if err := c.Invoke(ctx, "POST", "/v1/reels/expand", &service.ReelsRequest{GameID: *gameID, Reels: reels}, &expanded); err != nil {
			log.Errorf("http-> expand err=%v", err)
		} else {
			log.Infof("http-> expand #%d matrix=%v", i, expanded.Matrix)
		}

		var rolling service.RollingReply
		req := &service.RollingRequest{GameID: *gameID, Mode: "fake", Strip: longsymbol.Reel{1, 5, 5, 2, 6, 6, 6, 6, 3, 1}, Contents: longsymbol.Reel{50, 51, 2}}
		if err := c.Invoke(ctx, "POST", "/v1/rolling", req, &rolling); err != nil {
			log.Errorf("http-> rolling err=%v", err)
		} else {
			log.Infof("http-> rolling #%d strip=%v", i, rolling.Strip)
		}
		i++
		time.Sleep(time.Second * 10)
	}
}
