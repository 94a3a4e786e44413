//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"reelnorm/internal/biz"
	"reelnorm/internal/conf"
	"reelnorm/internal/data"
	"reelnorm/internal/server"
	"reelnorm/internal/service"

	"github.com/google/wire"
	"github.com/yola1107/kratos/v2"
	"github.com/yola1107/kratos/v2/log"
	"go.uber.org/zap"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, *conf.Normalizer, log.Logger, *zap.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(server.ProviderSet, data.ProviderSet, biz.ProviderSet, service.ProviderSet, newApp))
}
