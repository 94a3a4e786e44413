package main

import (
	"flag"
	"os"

	"reelnorm/internal/conf"
	"reelnorm/internal/service"

	"github.com/yola1107/kratos/v2"
	"github.com/yola1107/kratos/v2/config"
	"github.com/yola1107/kratos/v2/config/file"
	"github.com/yola1107/kratos/v2/library/log/zap"
	zconf "github.com/yola1107/kratos/v2/library/log/zap/conf"
	"github.com/yola1107/kratos/v2/log"
	"github.com/yola1107/kratos/v2/transport/http"
	_ "go.uber.org/automaxprocs"
	uzap "go.uber.org/zap"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name string
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, hs *http.Server, ns *service.NormalizeService) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			hs,
		),
		kratos.AfterStart(ns.Warmup),
	)
}

func main() {
	flag.Parse()

	logger := zap.NewLogger(zconf.DefaultConfig(
		zconf.WithProduction(),
		zconf.WithAppName(Name),
		zconf.WithLevel("debug"),
		zconf.WithDirectory("./logs"),
		zconf.WithSensitive([]string{"pwd", "password", "token"}),
	))

	// normalizer warnings go to stderr
	zl, err := uzap.NewProduction(uzap.Fields(uzap.String("service.id", id), uzap.String("service.name", Name)))
	if err != nil {
		panic(err)
	}
	defer zl.Sync()

	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	app, cleanup, err := wireApp(bc.Server, bc.Data, bc.Normalizer, logger, zl)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}
