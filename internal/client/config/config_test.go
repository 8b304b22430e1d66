package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "10.0.0.1:6000", "-t", "9"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "10.0.0.1:6000", cfg.ServerEndpointAddr)
	assert.Equal(t, 9*time.Second, cfg.RequestTimeout)
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(map[string]any{
		"server_endpoint_addr": "example:7000",
		"request_timeout":      "12s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "example:7000", cfg.ServerEndpointAddr)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
}
