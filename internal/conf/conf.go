package conf

import (
	"strconv"
	"strings"
	"time"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server     *Server     `json:"server"`
	Data       *Data       `json:"data"`
	Normalizer *Normalizer `json:"normalizer"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
	Rabbitmq *Data_Rabbitmq `json:"rabbitmq"`
}

type Data_Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Data_Redis struct {
	Addr string `json:"addr"`
	// CacheTtl is how long a game config stays cached.
	CacheTtl *Duration `json:"cache_ttl"`
}

type Data_Rabbitmq struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Vhost        string `json:"vhost"`
	Exchange     string `json:"exchange"`
	ExchangeType string `json:"exchange_type"`
	RoutingKey   string `json:"routing_key"`
}

// Normalizer configures the per-game long symbol normalizers.
type Normalizer struct {
	UseRandom bool `json:"use_random"`
	// Seed fixes the generator of every normalizer; 0 seeds from crypto/rand.
	Seed   int64   `json:"seed"`
	Warmup []int64 `json:"warmup"`
}

// Duration accepts "1.5s" style strings as well as plain seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Duration = 0
		return nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		d.Duration = time.Duration(secs * float64(time.Second))
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Duration.String())), nil
}

// AsDuration returns the zero duration for a nil receiver.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}
