package server

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reelnorm/encoding"
	"reelnorm/internal/biz"
	"reelnorm/internal/conf"
	"reelnorm/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yola1107/kratos/v2/log"
	"go.uber.org/zap"
)

func TestNewHTTPServer(t *testing.T) {
	uc := biz.NewNormalizeUsecase(&conf.Normalizer{}, nil, nil, zap.NewNop(), log.DefaultLogger)
	svc := service.NewNormalizeService(uc, nil, log.DefaultLogger)

	c := &conf.Server{Http: &conf.Server_HTTP{Network: "tcp", Addr: "127.0.0.1:0", Timeout: &conf.Duration{Duration: time.Second}}}
	assert.NotNil(t, NewHTTPServer(c, svc, log.DefaultLogger))
	assert.NotNil(t, NewHTTPServer(&conf.Server{}, svc, log.DefaultLogger))
}

func TestHTTPServerRecoversPanics(t *testing.T) {
	// a usecase without repo panics on the first game lookup
	uc := biz.NewNormalizeUsecase(&conf.Normalizer{}, nil, nil, zap.NewNop(), log.DefaultLogger)
	srv := NewHTTPServer(&conf.Server{}, service.NewNormalizeService(uc, nil, log.DefaultLogger), log.DefaultLogger)

	req := httptest.NewRequest(nethttp.MethodPost, "/v1/contents", strings.NewReader(`{"game_id":1,"contents":[1,2,3]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	require.NotPanics(t, func() { srv.ServeHTTP(rec, req) })

	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	var e struct {
		Reason string `json:"reason"`
	}
	require.NoError(t, encoding.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "UNKNOWN", e.Reason)
}
