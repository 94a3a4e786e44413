package data

import (
	"fmt"
	"strconv"

	"reelnorm/internal/biz"
	"reelnorm/internal/conf"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	kredis "github.com/yola1107/kratos/v2/library/db/redis"
	kxorm "github.com/yola1107/kratos/v2/library/db/xorm"
	"github.com/yola1107/kratos/v2/library/mq/rabbitmq"
	"github.com/yola1107/kratos/v2/log"
	"xorm.io/xorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewRedis, NewMysql, NewRabbitMQ, NewGameRepo, NewEventPublisher)

// Data .
type Data struct {
	db  *xorm.Engine
	rdb redis.UniversalClient
	pub *rabbitmq.Publisher
}

// NewData .
func NewData(c *conf.Data, logger log.Logger, db *xorm.Engine, rdb redis.UniversalClient, pub *rabbitmq.Publisher) (*Data, func(), error) {
	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
	}
	return &Data{
		db:  db,
		rdb: rdb,
		pub: pub,
	}, cleanup, nil
}

func NewRedis(c *conf.Data, logger log.Logger) redis.UniversalClient {
	return kredis.NewClient(kredis.WithAddress(c.Redis.Addr))
}

func NewMysql(c *conf.Data, logger log.Logger) (*xorm.Engine, func(), error) {
	engine, err := kxorm.NewEngine(
		kxorm.WithDriver(c.Database.Driver),
		kxorm.WithDataSource(c.Database.Source),
	)
	if err != nil {
		return nil, nil, err
	}
	if err := engine.Sync2(new(gameRow)); err != nil {
		engine.Close()
		return nil, nil, fmt.Errorf("sync %s: %w", gameRow{}.TableName(), err)
	}
	return engine, func() { engine.Close() }, nil
}

func NewRabbitMQ(c *conf.Data, logger log.Logger) (*rabbitmq.Publisher, func(), error) {
	opts, pubOpts := rabbitMQOptions(c.Rabbitmq)
	pub, err := rabbitmq.NewPublisher(opts, pubOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq publisher %s: %w", pubOpts.Exchange, err)
	}
	return pub, func() { pub.Close() }, nil
}

func rabbitMQOptions(c *conf.Data_Rabbitmq) (rabbitmq.Options, rabbitmq.PublisherOptions) {
	opts := rabbitmq.DefaultOptions()
	pubOpts := rabbitmq.PublisherOptions{
		Exchange:     defaultExchange,
		ExchangeType: "direct",
		RoutingKey:   biz.EventReelsExpanded,
	}
	if c == nil {
		return opts, pubOpts
	}
	if c.Host != "" {
		opts.Host = c.Host
	}
	if c.Port != 0 {
		opts.Port = strconv.Itoa(c.Port)
	}
	if c.Username != "" {
		opts.Username = c.Username
		opts.Password = c.Password
	}
	if c.Vhost != "" {
		opts.VHost = c.Vhost
	}
	if c.Exchange != "" {
		pubOpts.Exchange = c.Exchange
	}
	if c.ExchangeType != "" {
		pubOpts.ExchangeType = c.ExchangeType
	}
	if c.RoutingKey != "" {
		pubOpts.RoutingKey = c.RoutingKey
	}
	return opts, pubOpts
}
