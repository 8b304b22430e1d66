package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
	"github.com/dmitrijs2005/zkpauth/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrGRPC        string         `json:"endpoint_addr_grpc"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	ChallengeTTL            timex.Duration `json:"challenge_ttl"`
	ReapInterval            timex.Duration `json:"reap_interval"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics. The caller is expected to merge these
// values with defaults and command-line flags as part of the full
// configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.SecretKey = c.SecretKey
	config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	config.ChallengeTTL = time.Duration(c.ChallengeTTL.Duration)
	config.ReapInterval = time.Duration(c.ReapInterval.Duration)
}
