package corpuskit

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/corpuskit/pkg/config"
)

func TestSetupMetricsDisabled(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Metrics.Enabled = false

	shutdown := Setup(cfg)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupMetricsEnabled(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 19643

	shutdown := Setup(cfg)
	require.NotNil(t, shutdown)

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://127.0.0.1:19643/metrics")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// the default registry always carries the Go runtime collectors
	assert.Contains(t, string(body), "go_goroutines")

	require.NoError(t, shutdown(context.Background()))
}
