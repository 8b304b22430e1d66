package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
	"github.com/dmitrijs2005/zkpauth/internal/timex"
)

// JsonConfig is the JSON-file DTO for the client configuration. Interval
// fields accept both duration strings ("5s") and integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags, if any. A missing flag means nothing is loaded; an
// unreadable or invalid file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
