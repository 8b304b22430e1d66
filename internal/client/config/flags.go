package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   verifier endpoint address (e.g., "127.0.0.1:50051")
//	-t int      request timeout, seconds
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "verifier endpoint address")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
