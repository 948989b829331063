package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/verbnet-reader/internal/config"
	"github.com/heartmarshall/verbnet-reader/internal/metrics"
	"github.com/heartmarshall/verbnet-reader/internal/transport/middleware"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	m := metrics.New()
	cfg := testConfig(t, config.IndexQuick)
	lex, err := OpenLexicon(context.Background(), cfg, discardLogger(), m)
	require.NoError(t, err)

	rl := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	srv := httptest.NewServer(NewHandler(cfg, discardLogger(), lex, m, rl))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestNewHandler_Probes(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, _ := get(t, srv.URL+"/live")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp, _ = get(t, srv.URL+"/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewHandler_API(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/v1/lemmas?class=confess-37.10")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"items":["admit","confess","place"]}`, body)

	resp, _ = get(t, srv.URL+"/api/v1/classes/nope-1.1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/api/v1/classes/confess-37.10/frames")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewHandler_Metrics(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	get(t, srv.URL+"/api/v1/classes/confess-37.10/frames")

	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `verbnet_http_requests_total{method="GET",route="GET /api/v1/classes/{id}/frames",status="200"} 1`)
	assert.True(t, strings.Contains(body, "verbnet_frames_emitted_total"))
	assert.Contains(t, body, `verbnet_index_entries{table="documents"} 2`)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	cfg := testConfig(t, config.IndexQuick)
	cfg.Server.Port = 0
	lex, err := OpenLexicon(context.Background(), cfg, discardLogger(), m)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, cfg, discardLogger(), lex, m) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
